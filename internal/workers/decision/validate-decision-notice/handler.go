// internal/workers/decision/validate-decision-notice/handler.go
package validatedecisionnotice

import (
	"context"
	"encoding/json"
	"time"

	apperrors "tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/common/logger"
	"tribunal-workers/internal/common/metrics"
	"tribunal-workers/internal/common/observability"
	"tribunal-workers/internal/decision"
	"tribunal-workers/internal/decision/esa"
	"tribunal-workers/internal/decision/pip"
	"tribunal-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "validate-decision-notice"
)

type Handler struct {
	config *Config
	obs    *observability.Observability
	logger logger.Logger
}

func NewHandler(config *Config, obs *observability.Observability, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		obs:    obs,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	started := time.Now()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		parseErr := apperrors.NewDecisionParseFailedError(err)
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(parseErr.Code)).Inc()
		h.failJob(client, job, string(parseErr.Code), parseErr.Message)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(started).Seconds())
	h.obs.RecordValidationDuration(ctx, time.Since(started), input.CaseData.BenefitCode)

	if err != nil {
		code := string(apperrors.ErrCodeDecisionValidationFailed)
		if stdErr, ok := err.(*apperrors.StandardError); ok {
			code = string(stdErr.Code)
		}
		if apperrors.IsConfigurationError(err) {
			h.logger.Error("decision table configuration defect", map[string]interface{}{
				"jobKey":    job.Key,
				"errorCode": code,
			})
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, code).Inc()
		metrics.DecisionValidationErrors.WithLabelValues(input.CaseData.BenefitCode).Inc()
		h.failJob(client, job, code, err.Error())
		return
	}

	outcome := "valid"
	if !output.IsValid {
		outcome = "invalid"
	}
	metrics.DecisionValidationsTotal.WithLabelValues(output.BenefitCode, outcome).Inc()
	h.obs.RecordValidation(ctx, output.BenefitCode, outcome)

	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	cd := &input.CaseData

	if err := validatePayload(cd); err != nil {
		return nil, err
	}

	output := &Output{
		EvaluationID: uuid.New().String(),
		CaseID:       cd.CaseID,
		BenefitCode:  cd.BenefitCode,
		Errors:       []string{},
		Warnings:     []string{},
	}

	if msg, invalid := decision.ValidateNoticeDates(cd); invalid {
		output.Errors = append(output.Errors, msg)
	}

	switch cd.BenefitCode {
	case models.BenefitCodePIP:
		result, err := pip.Validate(cd)
		if err != nil {
			return nil, err
		}
		output.Errors = append(output.Errors, result.Errors...)
		output.Warnings = append(output.Warnings, result.Warnings...)
		output.Pip = &PipOutcome{
			DailyLivingPoints: result.DailyLivingPoints,
			MobilityPoints:    result.MobilityPoints,
			EndDateType:       result.EndDateType,
			Outcome:           result.Outcome,
		}
	case models.BenefitCodeESA:
		result, err := esa.Validate(cd)
		if err != nil {
			return nil, err
		}
		output.Errors = append(output.Errors, result.Errors...)
		output.Warnings = append(output.Warnings, result.Warnings...)
		output.Esa = &EsaOutcome{
			TotalPoints:              result.TotalPoints,
			ShowRegulation29Page:     result.ShowRegulation29Page,
			Schedule3ActivitiesApply: result.Schedule3ActivitiesApply,
		}
	default:
		return nil, apperrors.NewUnsupportedBenefitCodeError(cd.BenefitCode)
	}

	output.IsValid = len(output.Errors) == 0
	return output, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err = cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{
			"error": err,
		})
		return
	}

	h.logger.Info("job completed", map[string]interface{}{
		"jobKey":       job.Key,
		"evaluationId": output.EvaluationID,
		"isValid":      output.IsValid,
	})
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, _ = client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
}
