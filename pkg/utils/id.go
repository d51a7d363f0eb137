package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RunIDLength é o tamanho dos IDs que identificam uma execução da ingestão nos logs
const RunIDLength = 8

// GenerateID gera um ID alfanumérico com o tamanho informado
func GenerateID(length int) (string, error) {
	return gonanoid.Generate(idAlphabet, length)
}
