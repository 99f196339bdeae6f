package dto

type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type RailPass struct {
	Enabled  bool `json:"enabled"`
	DaysLeft *int `json:"daysLeft,omitempty"`
}

type BattlePass struct {
	BattlePassType string `json:"battlePassType"`
	CurrentLevel   int    `json:"currentLevel"`
}

type EstimateRequest struct {
	Server       string     `json:"server"`
	UntilDate    Date       `json:"untilDate"`
	RailPass     RailPass   `json:"railPass"`
	BattlePass   BattlePass `json:"battlePass"`
	Eq           int        `json:"eq"`
	Moc          int        `json:"moc"`
	CurrentRolls *int       `json:"currentRolls,omitempty"`
	CurrentJades *int       `json:"currentJades,omitempty"`
}

type RewardSource struct {
	Name        string `json:"name"`
	Jades       *int   `json:"jades"`
	Rolls       *int   `json:"rolls"`
	Cadence     string `json:"cadence"`
	Description string `json:"description,omitempty"`
}

type EstimateResponse struct {
	Sources    []RewardSource `json:"sources"`
	TotalJades int            `json:"totalJades"`
	Rolls      int            `json:"rolls"`
	Days       int            `json:"days"`
}

type TopUpRequest struct {
	TargetRolls  int  `json:"targetRolls"`
	CurrentJades *int `json:"currentJades,omitempty"`
	CurrentRolls *int `json:"currentRolls,omitempty"`
	FirstTime    bool `json:"firstTime"`
}

type Purchase struct {
	PackID     string `json:"packId"`
	Name       string `json:"name"`
	Qty        int    `json:"qty"`
	UnitPrice  int    `json:"unitPriceCents"`
	UnitShards int    `json:"unitShards"`
}

type TopUpResponse struct {
	NeededJades    int        `json:"neededJades"`
	ShortfallJades int        `json:"shortfallJades"`
	Purchases      []Purchase `json:"purchases"`
	TotalShards    int        `json:"totalShards"`
	TotalCents     int        `json:"totalCents"`
	Total          string     `json:"total"`
	Currency       string     `json:"currency"`
}
