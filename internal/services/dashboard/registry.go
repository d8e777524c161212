package dashboard

import (
	"fmt"

	"github.com/benedict-erwin/soc-dashboard/internal/entities"
	ar "github.com/benedict-erwin/soc-dashboard/internal/entities/asset_risk"
	ma "github.com/benedict-erwin/soc-dashboard/internal/entities/mitre_alerts"
	rt "github.com/benedict-erwin/soc-dashboard/internal/entities/response_timing"
	rfp "github.com/benedict-erwin/soc-dashboard/internal/entities/rule_false_positives"
	"github.com/benedict-erwin/soc-dashboard/internal/reports"
	arReport "github.com/benedict-erwin/soc-dashboard/internal/reports/asset_risk"
	maReport "github.com/benedict-erwin/soc-dashboard/internal/reports/mitre_alerts"
	rtReport "github.com/benedict-erwin/soc-dashboard/internal/reports/response_timing"
	rfpReport "github.com/benedict-erwin/soc-dashboard/internal/reports/rule_false_positives"
)

// Registration pairs an analytical query with the handler that charts it
type Registration struct {
	Config  entities.QueryConfig `json:"config"`
	Handler reports.Handler      `json:"-"`
}

// GetRegistrations returns the analytical units in execution order
func GetRegistrations() ([]Registration, error) {
	regs := []Registration{
		{Config: ma.GetQueryConfig(), Handler: maReport.Handle},
		{Config: ar.GetQueryConfig(), Handler: arReport.Handle},
		{Config: rfp.GetQueryConfig(), Handler: rfpReport.Handle},
		{Config: rt.GetQueryConfig(), Handler: rtReport.Handle},
	}

	if err := validate(regs); err != nil {
		return nil, err
	}
	return regs, nil
}

func validate(regs []Registration) error {
	seen := make(map[string]bool, len(regs))
	for _, reg := range regs {
		if reg.Config.Key == "" {
			return fmt.Errorf("registration '%s' has no key", reg.Config.Name)
		}
		if seen[reg.Config.Key] {
			return fmt.Errorf("duplicate query key '%s'", reg.Config.Key)
		}
		seen[reg.Config.Key] = true

		if reg.Handler == nil {
			return fmt.Errorf("query '%s' has no handler", reg.Config.Key)
		}
		if len(reg.Config.Charts) == 0 {
			return fmt.Errorf("query '%s' renders no charts", reg.Config.Key)
		}
	}
	return nil
}
