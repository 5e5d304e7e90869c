// Package register_tool_usecase covers the admin back-office CRUD on the
// tool catalog.
package register_tool_usecase

import (
	"context"
	"strings"
	"time"

	"toolhub/domain"
	"toolhub/port/tool_catalog_port"
	apperrors "toolhub/utils/errors"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type RegisterToolUsecase struct {
	gateway   tool_catalog_port.RegisterToolPort
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

func NewRegisterToolUsecase(gateway tool_catalog_port.RegisterToolPort) *RegisterToolUsecase {
	return &RegisterToolUsecase{
		gateway:   gateway,
		sanitizer: bluemonday.UGCPolicy(),
		now:       time.Now,
	}
}

func (u *RegisterToolUsecase) Create(ctx context.Context, record domain.ToolRecord) error {
	if strings.TrimSpace(record.CompanyName) == "" {
		return apperrors.ValidationError("company name cannot be empty", nil)
	}

	u.sanitizeRecord(&record)
	record.UpdatedAt = u.now()
	return u.gateway.CreateTool(ctx, record)
}

func (u *RegisterToolUsecase) Update(ctx context.Context, id uuid.UUID, record domain.ToolRecord) error {
	if strings.TrimSpace(record.CompanyName) == "" {
		return apperrors.ValidationError("company name cannot be empty", nil)
	}

	u.sanitizeRecord(&record)
	record.UpdatedAt = u.now()
	return u.gateway.UpdateTool(ctx, id, record)
}

func (u *RegisterToolUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.gateway.DeleteTool(ctx, id)
}

// sanitizeRecord strips unsafe markup from the free-text fields before they
// reach storage. User-generated content policy keeps basic formatting.
func (u *RegisterToolUsecase) sanitizeRecord(record *domain.ToolRecord) {
	record.ShortDescription = u.sanitizer.Sanitize(record.ShortDescription)
	record.FullDescription = u.sanitizer.Sanitize(record.FullDescription)
}
