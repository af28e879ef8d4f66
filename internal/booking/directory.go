package booking

import (
	"context"
)

type MemberInfo struct {
	Name  string
	Email string
}

type TrainerInfo struct {
	Name      string
	Specialty string
}

type ServiceInfo struct {
	Name            string
	Price           float64
	DurationMinutes int
}

// Directory resolves member, trainer and service display data at booking
// creation time. The directories are owned by the surrounding application;
// the engine only reads them, and never inside an open transaction.
// Implementations return an error wrapping ErrNotFound for unknown ids.
type Directory interface {
	Member(ctx context.Context, id uint) (*MemberInfo, error)
	Trainer(ctx context.Context, id uint) (*TrainerInfo, error)
	Service(ctx context.Context, id uint) (*ServiceInfo, error)
}
