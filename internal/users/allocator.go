// Package users holds the pure parts of onboarding: deterministic user id
// allocation and assembly of a new record from the collected fields.
package users

import (
	"fmt"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/models"
)

// Bands never overlap while the store holds fewer than BandWidth records.
const BandWidth = 1000

var bands = map[models.Clearance]int64{
	models.ClearanceAdmin: 1000,
	models.ClearanceUser:  2000,
	models.ClearanceGuest: 3000,
}

// Band returns the first id of the band assigned to role.
func Band(role models.Clearance) (int64, error) {
	b, ok := bands[role]
	if !ok {
		return 0, fmt.Errorf("%w: %q", common.ErrorInvalidRole, role)
	}
	return b, nil
}

// Allocate returns Band(role) + existingCount.
//
// existingCount is the number of records currently in the store across all
// roles. The allocator never queries the store, so an id freed by a delete can
// be handed out again; callers must check the store before writing.
func Allocate(role models.Clearance, existingCount int) (int64, error) {
	if existingCount < 0 {
		return 0, fmt.Errorf("%w: %d", common.ErrorInvalidCount, existingCount)
	}
	b, err := Band(role)
	if err != nil {
		return 0, err
	}
	return b + int64(existingCount), nil
}
