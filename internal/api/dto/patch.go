package dto

import "time"

type Patch struct {
	Name          string    `json:"name"`
	Version       string    `json:"version"`
	DateStart     time.Time `json:"dateStart"`
	Date2ndBanner time.Time `json:"date2ndBanner"`
	DateEnd       time.Time `json:"dateEnd"`
}

type PatchBanner struct {
	Version    string    `json:"version"`
	PatchName  string    `json:"patchName"`
	Half       int       `json:"half"`
	DateStart  time.Time `json:"dateStart"`
	DateEnd    time.Time `json:"dateEnd"`
	Characters []string  `json:"characters"`
}
