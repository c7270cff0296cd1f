package kvrepo

// Persisted key layout: disposals live at their bare id, accounts and transfer
// audit records under fixed prefixes in the same flat keyspace.
const (
	userKeyPrefix        = "user_"
	transactionKeyPrefix = "transaction_"
)

func UserKey(userID string) string {
	return userKeyPrefix + userID
}

func TransactionKey(transactionID string) string {
	return transactionKeyPrefix + transactionID
}
