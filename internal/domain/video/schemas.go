package video

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/mosaiclabs/mosaic-backend/internal/platform/apperr"
	"github.com/mosaiclabs/mosaic-backend/internal/platform/validation"
)

type VideoProjectCreate struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

type VideoProjectUpdate struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

type VideoEditTaskCreate struct {
	EditType   VideoEditType `json:"edit_type" validate:"required,oneof=trim merge filter enhance custom"`
	UserPrompt string        `json:"user_prompt" validate:"required,max=2000"`
}

// VideoEditTaskUpdate carries the processing backend's progress reports.
type VideoEditTaskUpdate struct {
	Status             *VideoStatus       `json:"status,omitempty" validate:"omitempty,oneof=uploaded processing ready error"`
	EditParameters     *datatypes.JSONMap `json:"edit_parameters,omitempty"`
	OutputFilePath     *string            `json:"output_file_path,omitempty" validate:"omitempty,max=500"`
	ProcessingLog      *string            `json:"processing_log,omitempty" validate:"omitempty,max=5000"`
	ErrorMessage       *string            `json:"error_message,omitempty" validate:"omitempty,max=1000"`
	ProgressPercentage *decimal.Decimal   `json:"progress_percentage,omitempty"`
}

func NewVideoProject(userID int64, in VideoProjectCreate) (*VideoProject, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &VideoProject{
		UserID:    userID,
		Title:     in.Title,
		Settings:  datatypes.JSONMap{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	return p, nil
}

func (in VideoProjectUpdate) Changes() (map[string]any, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	changes := map[string]any{}
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	return changes, nil
}

func NewVideoEditTask(projectID int64, in VideoEditTaskCreate) (*VideoEditTask, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &VideoEditTask{
		ProjectID:          projectID,
		EditType:           in.EditType,
		Status:             VideoStatusUploaded,
		UserPrompt:         in.UserPrompt,
		EditParameters:     datatypes.JSONMap{},
		ProgressPercentage: decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

var progressCeiling = decimal.NewFromInt(100)

func (in VideoEditTaskUpdate) Changes() (map[string]any, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if in.ProgressPercentage != nil {
		p := *in.ProgressPercentage
		if p.IsNegative() || p.GreaterThan(progressCeiling) {
			return nil, &apperr.FieldError{
				Field:      "progress_percentage",
				Constraint: "range=0-100",
				Value:      p.String(),
			}
		}
	}
	changes := map[string]any{}
	if in.Status != nil {
		changes["status"] = *in.Status
	}
	if in.EditParameters != nil {
		changes["edit_parameters"] = *in.EditParameters
	}
	if in.OutputFilePath != nil {
		changes["output_file_path"] = *in.OutputFilePath
	}
	if in.ProcessingLog != nil {
		changes["processing_log"] = *in.ProcessingLog
	}
	if in.ErrorMessage != nil {
		changes["error_message"] = *in.ErrorMessage
	}
	if in.ProgressPercentage != nil {
		changes["progress_percentage"] = *in.ProgressPercentage
	}
	return changes, nil
}
