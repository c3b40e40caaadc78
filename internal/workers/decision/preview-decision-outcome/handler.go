// internal/workers/decision/preview-decision-outcome/handler.go
package previewdecisionoutcome

import (
	"context"
	"encoding/json"
	"time"

	apperrors "tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/common/logger"
	"tribunal-workers/internal/common/metrics"
	"tribunal-workers/internal/decision"
	"tribunal-workers/internal/decision/esa"
	"tribunal-workers/internal/decision/pip"
	"tribunal-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "preview-decision-outcome"
)

// Handler builds a draft decision notice from the recorded answers: one
// section per assessed dimension listing the selected descriptors and their
// points, plus the derived outcome. It never validates; a case that would fail
// validation still previews.
type Handler struct {
	config *Config
	logger logger.Logger
	errs   *apperrors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	fieldLogger := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config: config,
		logger: fieldLogger,
		errs:   apperrors.NewErrorHandler(fieldLogger),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	started := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		parseErr := apperrors.NewDecisionParseFailedError(err)
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(parseErr.Code)).Inc()
		h.errs.HandleJobError(ctx, client, job, parseErr)
		return
	}

	output, err := h.execute(ctx, &input)
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(started).Seconds())
	if err != nil {
		code := string(apperrors.ErrCodeDecisionValidationFailed)
		if stdErr, ok := err.(*apperrors.StandardError); ok {
			code = string(stdErr.Code)
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, code).Inc()
		h.errs.HandleJobError(ctx, client, job, err)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	cd := &input.CaseData

	output := &Output{
		EvaluationID:  uuid.New().String(),
		CaseID:        cd.CaseID,
		BenefitCode:   cd.BenefitCode,
		GeneratedDate: time.Now().Format("2006-01-02"),
		Sections:      []Section{},
	}

	switch cd.BenefitCode {
	case models.BenefitCodePIP:
		if cd.Pip == nil {
			return output, nil
		}
		groups := []struct {
			activityType decision.ActivityType
			award        string
			compared     string
		}{
			{pip.DailyLiving, cd.Pip.DailyLivingQuestion, cd.Pip.ComparedToDWPDailyLivingQuestion},
			{pip.Mobility, cd.Pip.MobilityQuestion, cd.Pip.ComparedToDWPMobilityQuestion},
		}
		allowed := false
		for _, g := range groups {
			section, err := buildSection(cd, pip.Questions(), g.activityType, g.award)
			if err != nil {
				return nil, err
			}
			output.Sections = append(output.Sections, *section)
			if g.compared == decision.ComparedHigher {
				allowed = true
			}
		}
		if cd.Pip.DailyLivingQuestion != "" && cd.Pip.MobilityQuestion != "" {
			output.Outcome = decision.OutcomeRefused
			if allowed {
				output.Outcome = decision.OutcomeAllowed
			}
		}
	case models.BenefitCodeESA:
		if cd.Esa == nil {
			return output, nil
		}
		total := 0
		for _, activityType := range []decision.ActivityType{esa.PhysicalDisabilities, esa.MentalAssessment} {
			section, err := buildSection(cd, esa.Questions(), activityType, "")
			if err != nil {
				return nil, err
			}
			output.Sections = append(output.Sections, *section)
			total += section.Points
		}
		matched, err := decision.Matching(esa.PointsConditions(), esa.WorkCapabilityKey, total)
		if err != nil {
			return nil, err
		}
		output.Outcome = decision.OutcomeAllowed
		if matched.Award.Key == decision.NoAward.Key {
			output.Outcome = decision.OutcomeRefused
		}
	default:
		return nil, apperrors.NewUnsupportedBenefitCodeError(cd.BenefitCode)
	}

	return output, nil
}

// buildSection collects the selected activities of one dimension into notice
// rows. Unanswered selected activities are skipped rather than rejected.
func buildSection(cd *models.CaseData, qs *decision.QuestionService, activityType decision.ActivityType, awardKey string) (*Section, error) {
	section := &Section{Title: activityType.Name, Rows: []Row{}}
	if award, ok := decision.AwardByKey(awardKey); ok {
		section.Award = award.Label
	}

	selections := activityType.Selections(cd)
	selected := make(map[string]bool, len(selections))
	for _, key := range selections {
		selected[key] = true
	}

	for _, q := range qs.Catalog().ForActivityType(activityType.Key) {
		if !selected[q.Key] {
			continue
		}
		answer, err := qs.Answer(cd, q.Key)
		if err != nil {
			return nil, err
		}
		if answer == nil {
			continue
		}
		section.Rows = append(section.Rows, Row{
			Activity:   q.Label,
			Descriptor: answer.Text,
			Points:     answer.Points,
			Value:      answer.Value,
		})
		section.Points += answer.Points
	}
	return section, nil
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
		"sections":     len(output.Sections),
	})
}
