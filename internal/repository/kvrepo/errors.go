package kvrepo

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/ecopoints/internal/domain"
	"github.com/fsdevblog/ecopoints/pkg/kvstore"
)

// convertErr преобразует ошибку хранилища к стандартному виду для слоя репозитория.
// Особенности:
//   - Для отсутствующих ключей (kvstore.ErrKeyNotFound) возвращает ErrRecordNotFound из domain.
//   - Все остальные ошибки возвращаются как ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, domain.ErrUnknown, err.Error())
}
