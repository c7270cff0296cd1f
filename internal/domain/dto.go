package domain

type WasteType string

const (
	WasteRecyclable WasteType = "recyclable"
	WasteHazardous  WasteType = "hazardous"
	WasteKitchen    WasteType = "kitchen"
	WasteOther      WasteType = "other"
)

type DisposalStatus string

const (
	StatusRecorded  DisposalStatus = "recorded"
	StatusCollected DisposalStatus = "collected"
	StatusProcessed DisposalStatus = "processed"
	StatusCompleted DisposalStatus = "completed"
)
