package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera ids curtos para as execuções agendadas
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
