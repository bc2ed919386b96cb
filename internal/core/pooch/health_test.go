package pooch

import "testing"

func TestHealth(t *testing.T) {
	tests := []struct {
		name          string
		baseHealth    int
		healthLossAge int
		want          int
	}{
		{name: "no loss", baseHealth: 10, healthLossAge: 0, want: 10},
		{name: "partial loss", baseHealth: 10, healthLossAge: 6, want: 4},
		{name: "loss exceeds base", baseHealth: 8, healthLossAge: 12, want: 0},
		{name: "exact zero", baseHealth: 5, healthLossAge: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Health(tt.baseHealth, tt.healthLossAge); got != tt.want {
				t.Errorf("Health(%d, %d) = %d, want %d", tt.baseHealth, tt.healthLossAge, got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		alive  bool
		health int
		age    int
		want   string
	}{
		{name: "dead wins over everything", alive: false, health: 10, age: 2, want: StatusDead},
		{name: "unhealthy at threshold", alive: true, health: 3, age: 2, want: StatusUnhealthy},
		{name: "unhealthy wins over old", alive: true, health: 2, age: 15, want: StatusUnhealthy},
		{name: "old at threshold", alive: true, health: 10, age: 12, want: StatusOld},
		{name: "healthy", alive: true, health: 10, age: 4, want: StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.alive, tt.health, tt.age); got != tt.want {
				t.Errorf("Status(%v, %d, %d) = %q, want %q", tt.alive, tt.health, tt.age, got, tt.want)
			}
		})
	}
}

func TestDeathChance(t *testing.T) {
	tests := []struct {
		name   string
		health int
		want   float64
	}{
		{name: "safe health never dies", health: 5, want: 0},
		{name: "well above safe", health: 12, want: 0},
		{name: "one point deficit", health: 4, want: 0.2},
		{name: "two point deficit", health: 3, want: 0.4},
		{name: "zero health", health: 0, want: 1.0},
		{name: "negative health capped", health: -7, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeathChance(tt.health); got != tt.want {
				t.Errorf("DeathChance(%d) = %v, want %v", tt.health, got, tt.want)
			}
		})
	}
}

func TestDeathChanceMonotonic(t *testing.T) {
	prev := DeathChance(6)
	for health := 5; health >= -2; health-- {
		got := DeathChance(health)
		if got < prev {
			t.Errorf("DeathChance(%d) = %v, less than DeathChance(%d) = %v", health, got, health+1, prev)
		}
		if got > 1.0 {
			t.Errorf("DeathChance(%d) = %v, exceeds 1.0", health, got)
		}
		prev = got
	}
}
