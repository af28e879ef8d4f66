package directory

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gymbook/gymbook-backend/internal/booking"
	"github.com/gymbook/gymbook-backend/internal/models"
)

// GormDirectory resolves members, trainers and services from the
// application's own tables. It satisfies booking.Directory; the engine never
// learns where the data came from.
type GormDirectory struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (d *GormDirectory) Member(ctx context.Context, id uint) (*booking.MemberInfo, error) {
	var member models.Member
	if err := d.db.WithContext(ctx).First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: member %d", booking.ErrNotFound, id)
		}
		return nil, err
	}
	return &booking.MemberInfo{Name: member.Name, Email: member.Email}, nil
}

func (d *GormDirectory) Trainer(ctx context.Context, id uint) (*booking.TrainerInfo, error) {
	var trainer models.Trainer
	if err := d.db.WithContext(ctx).First(&trainer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trainer %d", booking.ErrNotFound, id)
		}
		return nil, err
	}
	if !trainer.IsActive {
		return nil, fmt.Errorf("%w: trainer %d is not active", booking.ErrValidation, id)
	}
	return &booking.TrainerInfo{Name: trainer.Name, Specialty: trainer.Specialty}, nil
}

func (d *GormDirectory) Service(ctx context.Context, id uint) (*booking.ServiceInfo, error) {
	var svc models.GymService
	if err := d.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: service %d", booking.ErrNotFound, id)
		}
		return nil, err
	}
	if !svc.IsActive {
		return nil, fmt.Errorf("%w: service %d is not active", booking.ErrValidation, id)
	}
	return &booking.ServiceInfo{
		Name:            svc.Name,
		Price:           svc.Price,
		DurationMinutes: svc.DurationMinutes,
	}, nil
}
