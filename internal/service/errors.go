// errors.go — ошибки бизнес-логики сервисного слоя.
package service

import "errors"

var (
	// ErrNotFound — ресурс не найден.
	ErrNotFound = errors.New("ресурс не найден")
	// ErrUnsupportedDocumentType — имя файла не соответствует ни одному
	// известному виду документа.
	ErrUnsupportedDocumentType = errors.New("неподдерживаемый вид документа: имя файла должно содержать pedestrian, traffic или crash")
	// ErrValidation — ошибка валидации входных данных.
	ErrValidation = errors.New("ошибка валидации")
)
