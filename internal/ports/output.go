package ports

import "rusl-mdapi/internal/types"

type PlanWriterPort interface {
	WritePlan(path string, plan types.InstallPlan) error
}
