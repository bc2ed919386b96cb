package cli

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/example/poochyard/internal/core/pooch"
	"github.com/example/poochyard/internal/ports/primary"
)

// parseID parses a positional numeric ID argument.
func parseID(label, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected a number", label, raw)
	}
	return id, nil
}

// statusColor renders a pooch status with the conventional coloring.
func statusColor(status string) string {
	switch status {
	case pooch.StatusHealthy:
		return color.New(color.FgGreen).Sprint(status)
	case pooch.StatusUnhealthy:
		return color.New(color.FgYellow).Sprint(status)
	case pooch.StatusOld:
		return color.New(color.FgBlue).Sprint(status)
	case pooch.StatusDead:
		return color.New(color.FgRed).Sprint(status)
	default:
		return status
	}
}

// ownerLabel renders the owner column for a pooch row.
func ownerLabel(p *primary.Pooch) string {
	switch {
	case p.OwnerDiscordID != nil:
		return strconv.FormatInt(*p.OwnerDiscordID, 10)
	case p.VendorID != nil:
		return fmt.Sprintf("vendor %d", *p.VendorID)
	default:
		return "-"
	}
}
