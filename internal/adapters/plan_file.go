package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"rusl-mdapi/internal/ports"
	"rusl-mdapi/internal/types"
)

type PlanFileAdapter struct{}

func NewPlanFileAdapter() PlanFileAdapter {
	return PlanFileAdapter{}
}

func (a PlanFileAdapter) WritePlan(path string, plan types.InstallPlan) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("plan output path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create plan directory").
				WithCause(err)
		}
	}
	data, err := yaml.Marshal(plan)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode install plan").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write install plan").
			WithCause(err)
	}
	return nil
}

func (a PlanFileAdapter) ReadPlan(path string) (types.InstallPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.InstallPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("install plan not found").
			WithCause(err)
	}
	var plan types.InstallPlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return types.InstallPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse install plan").
			WithCause(err)
	}
	return plan, nil
}

var _ ports.PlanWriterPort = PlanFileAdapter{}
