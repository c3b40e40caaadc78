// cmd/tools/worker-generator/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"tribunal-workers/pkg/registry"
)

// WorkerData holds data for templates
type WorkerData struct {
	Name                 string                 `json:"name"`
	PackageName          string                 `json:"packageName"`
	TaskType             string                 `json:"taskType"`
	InputSchema          map[string]interface{} `json:"inputSchema"`
	OutputSchema         map[string]interface{} `json:"outputSchema"`
	ErrorCodes           []string               `json:"errorCodes"`
	Description          string                 `json:"description"`
	Category             string                 `json:"category"`
	Timeout              string                 `json:"timeout"`
	Retries              int                    `json:"retries"`
	ImplementationStatus string                 `json:"implementationStatus"`
}

// parseSchema extracts properties from a JSON schema object
func parseSchema(schemaObj interface{}) map[string]interface{} {
	if schemaMap, ok := schemaObj.(map[string]interface{}); ok {
		if props, exists := schemaMap["properties"]; exists {
			if properties, ok := props.(map[string]interface{}); ok {
				return properties
			}
		}
	}
	return map[string]interface{}{}
}

// goTypeFromJSONType maps JSON schema types to Go types
func goTypeFromJSONType(jsonType interface{}, jsonFormat interface{}) string {
	if jt, ok := jsonType.(string); ok {
		switch jt {
		case "string":
			return "string"
		case "number", "integer":
			return "int"
		case "boolean":
			return "bool"
		case "object":
			return "map[string]interface{}"
		case "array":
			return "[]string"
		default:
			return "interface{}"
		}
	}
	return "interface{}"
}

// generateStructFields generates Go struct field definitions from schema properties
func generateStructFields(properties map[string]interface{}) string {
	var fields []string
	for prop, details := range properties {
		propDetails, ok := details.(map[string]interface{})
		if !ok {
			continue
		}
		goType := goTypeFromJSONType(propDetails["type"], propDetails["format"])
		fieldDef := fmt.Sprintf("\t%s %s `json:%q`", upperFirst(prop), goType, prop)
		fields = append(fields, fieldDef)
	}
	return strings.Join(fields, "\n")
}

// upperFirst makes the first character uppercase
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

const handlerTemplate = `// internal/workers/{{ .Category }}/{{ .TaskType }}/handler.go
package {{ .PackageName }}

import (
	"context"
	"encoding/json"
	"time"

	apperrors "tribunal-workers/internal/common/errors"
	"tribunal-workers/internal/common/logger"
	"tribunal-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "{{ .TaskType }}"
)

// Handler processes {{ .TaskType }} jobs. {{ .Description }}
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
	output := &Output{
		EvaluationID: uuid.New().String(),
	}

	// TODO: implement {{ .TaskType }} against input.CaseData

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
	})
}
`

const configTemplate = `// internal/workers/{{ .Category }}/{{ .TaskType }}/config.go
package {{ .PackageName }}

import "time"

// Config holds configuration specific to the {{ .TaskType }} worker.
type Config struct {
	Timeout time.Duration
}
`

const modelsTemplate = `// internal/workers/{{ .Category }}/{{ .TaskType }}/models.go
package {{ .PackageName }}

import "tribunal-workers/internal/models"

// Input is the job variable payload for {{ .TaskType }}.
type Input struct {
	CaseData models.CaseData ` + "`json:\"caseData\"`" + `
}

// Output is written back to the workflow as job variables.
type Output struct {
	EvaluationID string ` + "`json:\"evaluationId\"`" + `
{{- $outputProps := parseSchema .OutputSchema }}
{{- if $outputProps }}
{{ generateStructFields $outputProps }}
{{- end }}
}
`

const testTemplate = `// internal/workers/{{ .Category }}/{{ .TaskType }}/handler_test.go
package {{ .PackageName }}

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tribunal-workers/internal/common/logger"
)

func TestHandler_Execute(t *testing.T) {
	handler := NewHandler(&Config{Timeout: 10 * time.Second}, logger.NewTestLogger(t))

	input := &Input{
		// TODO: build a representative case payload
	}

	output, err := handler.execute(context.Background(), input)
	require.NoError(t, err)
	assert.NotEmpty(t, output.EvaluationID)
}
`

const readmeTemplate = `# {{ .Name }} Worker

## Description
{{ .Description }}

## Category
{{ .Category }}

## Task Type
{{ .TaskType }}

## Implementation Status
{{ .ImplementationStatus }}

## Configuration
- **Timeout**: {{ .Timeout }}
- **Retries**: {{ .Retries }}

## Error Codes
{{- if .ErrorCodes }}
{{ range .ErrorCodes }}
- {{ . }}
{{ end }}
{{- else }}
No specific error codes defined.
{{- end }}

## Usage

### Register in Worker Manager

` + "```go" + `
import {{ .PackageName }} "tribunal-workers/internal/workers/{{ .Category }}/{{ .TaskType }}"

// In main:
if config.IsWorkerEnabled(cfg, {{ .PackageName }}.TaskType) {
    wcfg := config.GetWorkerConfig(cfg, {{ .PackageName }}.TaskType)
    handler := {{ .PackageName }}.NewHandler(
        &{{ .PackageName }}.Config{Timeout: config.GetDuration(wcfg.Timeout)},
        log,
    )
    workers = append(workers, camunda.NewWorker(
        broker.GetClient(), {{ .PackageName }}.TaskType, wcfg.MaxJobsActive, config.GetDuration(wcfg.Timeout), handler, zapLog,
    ))
}
` + "```" + `

### Configuration in config.yaml

` + "```yaml" + `
workers:
  {{ .TaskType }}:
    enabled: true
    max_jobs_active: 5
    timeout: 10000
` + "```" + `

## Development

### Run Tests
` + "```bash" + `
go test ./internal/workers/{{ .Category }}/{{ .TaskType }}/...
` + "```" + `
`

func main() {
	activity := flag.String("activity", "", "Activity ID from registry (e.g., validate-decision-notice)")
	outputDir := flag.String("output", "./internal/workers/", "Output directory for the generated worker")
	registryPath := flag.String("registry", "configs/activity-registry.json", "Path to the activity registry JSON file")
	flag.Parse()

	if *activity == "" {
		fmt.Println("Usage: worker-generator --activity <id> --output <dir> [--registry <path>]")
		fmt.Println("\nExample:")
		fmt.Println("  go run cmd/tools/worker-generator/main.go --activity validate-decision-notice")
		os.Exit(1)
	}

	reg, err := registry.LoadRegistry(*registryPath)
	if err != nil {
		fmt.Printf("Error loading registry from %s: %v\n", *registryPath, err)
		os.Exit(1)
	}

	foundActivity := reg.FindActivity(*activity)
	if foundActivity == nil {
		fmt.Printf("Activity '%s' not found in registry %s\n", *activity, *registryPath)
		os.Exit(1)
	}

	data := WorkerData{
		Name:                 foundActivity.DisplayName,
		PackageName:          strings.ReplaceAll(foundActivity.ID, "-", ""),
		TaskType:             foundActivity.TaskType,
		InputSchema:          foundActivity.InputSchema,
		OutputSchema:         foundActivity.OutputSchema,
		ErrorCodes:           foundActivity.ErrorCodes,
		Description:          foundActivity.Description,
		Category:             foundActivity.Category,
		Timeout:              foundActivity.Timeout,
		Retries:              foundActivity.Retries,
		ImplementationStatus: foundActivity.ImplementationStatus,
	}

	workerDir := filepath.Join(*outputDir, data.Category, foundActivity.ID)

	if err := os.MkdirAll(workerDir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	funcMap := template.FuncMap{
		"parseSchema":          parseSchema,
		"goTypeFromJSONType":   goTypeFromJSONType,
		"generateStructFields": generateStructFields,
		"upperFirst":           upperFirst,
	}

	templates := map[string]string{
		"handler.go":      handlerTemplate,
		"config.go":       configTemplate,
		"models.go":       modelsTemplate,
		"handler_test.go": testTemplate,
		"README.md":       readmeTemplate,
	}

	for filename, tmplStr := range templates {
		tmpl, err := template.New(filename).Funcs(funcMap).Parse(tmplStr)
		if err != nil {
			fmt.Printf("Error parsing template %s: %v\n", filename, err)
			continue
		}

		filePath := filepath.Join(workerDir, filename)
		file, err := os.Create(filePath)
		if err != nil {
			fmt.Printf("Error creating file %s: %v\n", filePath, err)
			continue
		}

		if err := tmpl.Execute(file, data); err != nil {
			fmt.Printf("Error executing template for %s: %v\n", filename, err)
		}
		file.Close()

		fmt.Printf("✓ Generated %s\n", filePath)
	}

	fmt.Printf("\n✅ Worker scaffold generated successfully at: %s\n", workerDir)
	fmt.Printf("\nNext steps:\n")
	fmt.Printf("  1. Implement execute in handler.go\n")
	fmt.Printf("  2. Fill in the Output fields in models.go\n")
	fmt.Printf("  3. Write tests in handler_test.go\n")
	fmt.Printf("  4. Register worker in cmd/worker-manager/main.go\n")
	fmt.Printf("  5. Add configuration to configs/config.yaml\n")
}
