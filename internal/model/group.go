package model

import (
	"time"

	"github.com/google/uuid"
)

type GroupCode string

const EmptyGroupCode GroupCode = ""

type Group struct {
	ID        uuid.UUID
	Code      GroupCode
	CreatedAt time.Time
}

type Member struct {
	ID             uuid.UUID
	GroupID        uuid.UUID
	Name           string
	BirthDate      *time.Time
	Services       []string
	LikedGenres    []int64
	DislikedGenres []int64
	JoinedAt       time.Time
}
