package hierarchy

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/hierarchy-go/pkg/hierarchy/models"
)

var requestValidate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest checks the fields every request must carry.
func ValidateRequest(req *models.Request) error {
	err := requestValidate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewConfigurationError("request", "", err)
	}
	// Report the first violation, chart type before dataset.
	for _, fe := range verrs {
		switch fe.StructField() {
		case "ChartType":
			return NewConfigurationError("request", "chartType", ErrChartTypeRequired)
		case "Dataset":
			return NewConfigurationError("request", "dataset", ErrDatasetRequired)
		}
	}
	return NewConfigurationError("request", verrs[0].Field(), err)
}
