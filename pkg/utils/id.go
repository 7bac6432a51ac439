package utils

import "github.com/google/uuid"

// NewID 对外暴露的不透明 ID
func NewID() string { return uuid.NewString() }
