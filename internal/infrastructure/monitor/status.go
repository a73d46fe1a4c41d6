package monitor

import "time"

type Status struct {
	Gateway   bool      `json:"gateway"`
	Redis     bool      `json:"redis"`
	LastCheck time.Time `json:"last_check"`
}
