// Пакет hash — вычисление 64-битных отпечатков текстовых полей.
//
// Отпечаток — усечённый криптографический дайджест для индексированного
// поиска по равенству, а не гарантия целостности: коллизии допустимы,
// но результат детерминирован и стабилен между запусками.
package hash

import (
	"crypto/sha256"
	"encoding/binary"
)

// Fingerprint вычисляет отпечаток текста: SHA-256 от UTF-8 байт,
// первые 8 байт дайджеста в big-endian как знаковое 64-битное число.
func Fingerprint(text string) int64 {
	sum := sha256.Sum256([]byte(text))
	return int64(binary.BigEndian.Uint64(sum[:8]))
}

// Optional возвращает отпечаток текста или nil для пустой строки.
func Optional(text string) *int64 {
	if text == "" {
		return nil
	}
	fp := Fingerprint(text)
	return &fp
}
