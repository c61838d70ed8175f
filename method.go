package smoother

import (
	"fmt"
	"strings"

	"github.com/aouyang1/go-smoother/gridsearch"
	"github.com/aouyang1/go-smoother/recurrence"
)

const (
	// StepMN is the grid resolution of the two parameter trend model
	StepMN = 0.001

	// StepMdM is the grid resolution of the damped seasonal model
	StepMdM = 0.01

	// ParamUpper is the exclusive upper bound of every smoothing weight
	ParamUpper = 1.0
)

// Method binds a smoothing recurrence to the grid its parameters are searched over
type Method struct {
	Name       string
	Label      string
	ParamNames []string
	Grid       *gridsearch.Grid
	New        recurrence.Factory
}

// MethodMN is the Holt two parameter multiplicative trend method
func MethodMN() (*Method, error) {
	grid, err := gridsearch.Uniform(2, StepMN, ParamUpper)
	if err != nil {
		return nil, fmt.Errorf("unable to create M-N grid, %w", err)
	}
	return &Method{
		Name:       "M-N",
		Label:      "exponent_m_n",
		ParamNames: []string{"A", "B"},
		Grid:       grid,
		New:        recurrence.NewHoltFromParams,
	}, nil
}

// MethodMdM is the damped multiplicative trend with multiplicative seasonality method
func MethodMdM() (*Method, error) {
	grid, err := gridsearch.Uniform(3, StepMdM, ParamUpper)
	if err != nil {
		return nil, fmt.Errorf("unable to create Md-M grid, %w", err)
	}
	return &Method{
		Name:       "Md-M",
		Label:      "exponent_md_m",
		ParamNames: []string{"A", "B", "Y"},
		Grid:       grid,
		New:        recurrence.NewDampedFromParams,
	}, nil
}

// Methods returns every smoothing method in reporting order
func Methods() ([]*Method, error) {
	mn, err := MethodMN()
	if err != nil {
		return nil, err
	}
	mdm, err := MethodMdM()
	if err != nil {
		return nil, err
	}
	return []*Method{mn, mdm}, nil
}

// MethodByName looks up a method by its case insensitive name with or without the dash
func MethodByName(name string) (*Method, error) {
	switch strings.ToLower(name) {
	case "m-n", "mn":
		return MethodMN()
	case "md-m", "mdm":
		return MethodMdM()
	}
	return nil, fmt.Errorf("%s, %w", name, ErrUnknownMethod)
}
