package users

import (
	"fmt"

	"github.com/dmitrijs2005/gophroster/internal/common"
	"github.com/dmitrijs2005/gophroster/internal/models"
)

// Build assembles a complete record from the collected basic fields, the
// chosen role and the allocated id. basic is not modified.
func Build(basic models.Record, role models.Clearance, id int64) (models.Record, error) {
	for _, f := range models.BasicFields {
		if _, ok := basic[f]; !ok {
			return nil, fmt.Errorf("%w: %s", common.ErrorMissingField, f)
		}
	}

	rec := basic.Clone()
	rec[models.FieldClearance] = string(role)
	rec[models.FieldUserID] = id
	return rec, nil
}
