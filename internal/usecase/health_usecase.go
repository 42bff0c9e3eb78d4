package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	corsEnabled bool
}

func NewHealthUsecase(corsEnabled bool) HealthUsecase {
	return &healthUsecase{corsEnabled: corsEnabled}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	cors := "disabled"
	if u.corsEnabled {
		cors = "enabled"
	}
	return map[string]string{
		"status": "ok",
		"cors":   cors,
	}
}
