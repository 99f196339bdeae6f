package dto

type Banner struct {
	Kind           string  `json:"kind"`
	Name           string  `json:"name"`
	BaseRate       float64 `json:"baseRate"`
	PityStart      int     `json:"pityStart"`
	MaxPity        int     `json:"maxPity"`
	BannerRate     float64 `json:"bannerRate"`
	GuaranteeRate  float64 `json:"guaranteeRate"`
	GuaranteedPity *int    `json:"guaranteedPity,omitempty"`
	MaxEidolon     int     `json:"maxEidolon"`
}

type GachaCfgResponse struct {
	Defaults    ProbabilityRateRequest `json:"defaults"`
	JadePerRoll int                    `json:"jadePerRoll"`
	MaxPulls    int                    `json:"maxPulls"`
	Banners     []string               `json:"banners"`
}

type ProbabilityRateRequest struct {
	CurrentEidolon int    `json:"currentEidolon"`
	Pity           int    `json:"pity"`
	Pulls          int    `json:"pulls"`
	NextGuaranteed bool   `json:"nextGuaranteed"`
	EpitomizedPity *int   `json:"epitomizedPity,omitempty"`
	Banner         string `json:"banner"`
}

type ReducedSim struct {
	Eidolon int     `json:"eidolon"`
	Rate    float64 `json:"rate"`
}

type ProbabilityRateResponse struct {
	RollBudget int            `json:"rollBudget"`
	Data       [][]ReducedSim `json:"data"`
}

type SampleRequest struct {
	ProbabilityRateRequest
	Trials int     `json:"trials"`
	Seed   *uint64 `json:"seed,omitempty"`
}

type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
}

type SampleResponse struct {
	RollBudget int            `json:"rollBudget"`
	Trials     int            `json:"trials"`
	Data       [][]ReducedSim `json:"data"`
	Copies     Stats          `json:"copies"`
}

// WarpRequest performs Count pulls from the given state.
type WarpRequest struct {
	CurrentEidolon int     `json:"currentEidolon"`
	Pity           int     `json:"pity"`
	NextGuaranteed bool    `json:"nextGuaranteed"`
	EpitomizedPity *int    `json:"epitomizedPity,omitempty"`
	Banner         string  `json:"banner"`
	Count          int     `json:"count"`
	Seed           *uint64 `json:"seed,omitempty"`
}

type WarpResponse struct {
	Hits  []bool      `json:"hits"`
	State WarpRequest `json:"state"`
}
