package plan

import "convertor/internal/domain/plan"

type listInput struct{}

type listOutput struct {
	Body []plan.Plan
}
