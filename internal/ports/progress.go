package ports

import "rusl-mdapi/internal/types"

type ProgressPort interface {
	Start(message string)
	Stop(status types.StepStatus)
}
