package dataset

import (
	"github.com/google/uuid"
)

// Row is one geographic sub-unit's full record of infrastructure and market
// metrics, plus the derived scoring columns filled in by the scoring pass.
type Row struct {
	ID uuid.UUID `json:"id"`

	Province    string `json:"province"`
	District    string `json:"district"`
	Subdistrict string `json:"subdistrict"`
	HappyBlock  string `json:"happy_block"`
	L2          string `json:"l2"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Household int `json:"household"`
	Install   int `json:"install"`
	Churn     int `json:"churn"`
	NetAdd    int `json:"net_add"`

	ChurnPercent    float64 `json:"churn_percent"`
	PortUse         int     `json:"port_use"`
	PortAvailable   int     `json:"port_available"`
	PortUtilization float64 `json:"port_utilization"`

	MarketShareAIS  float64 `json:"market_share_ais"`
	MarketShare3BB  float64 `json:"market_share_3bb"`
	MarketShareNT   float64 `json:"market_share_nt"`
	MarketShareTrue float64 `json:"market_share_true"`

	TrueSpeed string `json:"true_speed"`

	// Derived columns. Zero until the scoring pass runs.
	HouseholdNorm   float64 `json:"household_norm"`
	InstallNorm     float64 `json:"install_norm"`
	Retention       float64 `json:"retention"`
	MarketShareNorm float64 `json:"market_share_norm"`
	SpeedNorm       float64 `json:"speed_norm"`
	PotentialScore  float64 `json:"potential_score"`
}

// Column names as they must appear in the input header, verbatim.
const (
	colProvince        = "Province"
	colDistrict        = "District"
	colSubdistrict     = "Sub-district"
	colHappyBlock      = "Happy Block"
	colL2              = "L2"
	colLatitude        = "Latitude"
	colLongitude       = "Longitude"
	colHousehold       = "Household"
	colInstall         = "Install"
	colChurn           = "Churn"
	colChurnPercent    = "% Churn"
	colPortUse         = "Port Use"
	colPortAvailable   = "Port Available"
	colPortUtilization = "Port Utilization (%)"
	colShareAIS        = "Market Share AIS (%)"
	colShare3BB        = "Market Share 3BB (%)"
	colShareNT         = "Market Share NT (%)"
	colShareTrue       = "Market Share True (%)"
	colTrueSpeed       = "True Speed"
	colNetAdd          = "Net Add"
)

func requiredColumns() []string {
	return []string{
		colProvince, colDistrict, colSubdistrict, colHappyBlock, colL2,
		colLatitude, colLongitude, colHousehold, colInstall, colChurn,
		colChurnPercent, colPortUse, colPortAvailable, colPortUtilization,
		colShareAIS, colShare3BB, colShareNT, colShareTrue,
		colTrueSpeed, colNetAdd,
	}
}
