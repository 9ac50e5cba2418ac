// Package classifier maps ticker symbols to asset classes and security types
// using static rule tables. All functions are pure.
package classifier

import (
	"strings"

	"github.com/PuneetFusion/portfolioanalyzer/internal/models"
)

// Asset class names. Nine classes cover the ticker universe.
const (
	USLargeCap    = "us_large_cap"
	USMidCap      = "us_mid_cap"
	USSmallCap    = "us_small_cap"
	IntlDeveloped = "intl_developed"
	IntlEmerging  = "intl_emerging"
	USBonds       = "us_bonds"
	IntlBonds     = "intl_bonds"
	RealEstate    = "real_estate"
	Cash          = "cash"
)

// DefaultAssetClass is the class assigned to unknown tickers. Broad US large
// cap equity is the documented default, not an error.
const DefaultAssetClass = USLargeCap

// profiles holds the static return/risk assumptions per asset class, keyed by
// class name. Process-wide and immutable.
var profiles = map[string]models.AssetClassProfile{
	USLargeCap:    {Name: USLargeCap, ExpectedReturn: 0.10, Risk: 0.15, Type: models.HoldingTypeEquity},
	USMidCap:      {Name: USMidCap, ExpectedReturn: 0.11, Risk: 0.17, Type: models.HoldingTypeEquity},
	USSmallCap:    {Name: USSmallCap, ExpectedReturn: 0.12, Risk: 0.20, Type: models.HoldingTypeEquity},
	IntlDeveloped: {Name: IntlDeveloped, ExpectedReturn: 0.09, Risk: 0.16, Type: models.HoldingTypeEquity},
	IntlEmerging:  {Name: IntlEmerging, ExpectedReturn: 0.115, Risk: 0.22, Type: models.HoldingTypeEquity},
	USBonds:       {Name: USBonds, ExpectedReturn: 0.04, Risk: 0.05, Type: models.HoldingTypeFixedIncome},
	IntlBonds:     {Name: IntlBonds, ExpectedReturn: 0.035, Risk: 0.07, Type: models.HoldingTypeFixedIncome},
	RealEstate:    {Name: RealEstate, ExpectedReturn: 0.08, Risk: 0.19, Type: models.HoldingTypeEquity},
	Cash:          {Name: Cash, ExpectedReturn: 0.01, Risk: 0.01, Type: models.HoldingTypeCash},
}

// tickerClasses maps known tickers to asset classes.
var tickerClasses = map[string]string{
	"SPY": USLargeCap, "VOO": USLargeCap, "IVV": USLargeCap, "VTI": USLargeCap, "QQQ": USLargeCap,
	"MDY": USMidCap, "IJH": USMidCap, "VO": USMidCap,
	"IWM": USSmallCap, "IJR": USSmallCap, "VB": USSmallCap,
	"EFA": IntlDeveloped, "VEA": IntlDeveloped, "IEFA": IntlDeveloped,
	"EEM": IntlEmerging, "VWO": IntlEmerging, "IEMG": IntlEmerging,
	"AGG": USBonds, "BND": USBonds, "TLT": USBonds, "LQD": USBonds, "TIP": USBonds,
	"BNDX": IntlBonds, "IAGG": IntlBonds, "BWX": IntlBonds,
	"VNQ": RealEstate, "IYR": RealEstate, "SCHH": RealEstate,
	"CASH": Cash,
}

// bondSubstrings mark a ticker as fixed income in the coarse classification.
var bondSubstrings = []string{"BOND", "TREASURY", "TIPS"}

// Classify returns the asset-class name for a ticker. Case-insensitive;
// unknown tickers fall back to DefaultAssetClass.
func Classify(ticker string) string {
	if class, ok := tickerClasses[strings.ToUpper(strings.TrimSpace(ticker))]; ok {
		return class
	}
	return DefaultAssetClass
}

// Profile returns the static assumptions for a ticker's asset class.
func Profile(ticker string) models.AssetClassProfile {
	return profiles[Classify(ticker)]
}

// ProfileByClass returns the static assumptions for an asset-class name.
// The second return is false for unknown class names.
func ProfileByClass(name string) (models.AssetClassProfile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// CashProfile returns the cash asset-class assumptions. Its expected return
// doubles as the risk-free proxy in the static model.
func CashProfile() models.AssetClassProfile {
	return profiles[Cash]
}

// ClassifyType is the coarse variant: everything is equity unless the ticker
// literally equals CASH or carries a bond-indicating substring.
func ClassifyType(ticker string) models.HoldingType {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if t == "CASH" {
		return models.HoldingTypeCash
	}
	for _, sub := range bondSubstrings {
		if strings.Contains(t, sub) {
			return models.HoldingTypeFixedIncome
		}
	}
	return models.HoldingTypeEquity
}
