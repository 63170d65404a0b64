package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// MustGenerateID gera um identificador curto para entidades criadas pela API
// (estratégias de otimização, por exemplo). Entra em pânico apenas se a
// fonte de entropia do sistema falhar.
func MustGenerateID() string {
	return gonanoid.MustGenerate(characters, 8)
}
