package filters

import "property-ledger/internal/models"

// ActionType names an action for logs and metrics
type ActionType string

const (
	ActionUpdateFilters ActionType = "update_filters"
	ActionResetFilters  ActionType = "reset_filters"
	ActionSetData       ActionType = "set_data"
)

// Action is one of UpdateFilters, ResetFilters or SetData
type Action interface {
	Type() ActionType
	isAction()
}

// UpdateFilters overlays a partial update onto the current criteria
type UpdateFilters struct {
	Update FilterUpdate
}

// ResetFilters clears the criteria but keeps the last results on screen
type ResetFilters struct{}

// SetData replaces the results with ones computed elsewhere. Version is the
// state version the results were computed for.
type SetData struct {
	Bills   []models.UtilityBill
	Charges []models.TenantCharge
	Stats   models.BillStats
	Version uint64
}

func (UpdateFilters) Type() ActionType { return ActionUpdateFilters }
func (ResetFilters) Type() ActionType  { return ActionResetFilters }
func (SetData) Type() ActionType       { return ActionSetData }

func (UpdateFilters) isAction() {}
func (ResetFilters) isAction()  {}
func (SetData) isAction()       {}
