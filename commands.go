package credittrail

// CommandType is a typed string for identifying mutation commands.
type CommandType string

// Command types forming the closed mutation surface of the store.
const (
	CmdAddPerson         CommandType = "add-person"
	CmdUpdatePerson      CommandType = "update-person"
	CmdDeletePerson      CommandType = "delete-person"
	CmdAddLocation       CommandType = "add-location"
	CmdDeleteLocation    CommandType = "delete-location"
	CmdAddTransaction    CommandType = "add-transaction"
	CmdUpdateTransaction CommandType = "update-transaction"
	CmdDeleteTransaction CommandType = "delete-transaction"
	CmdAttachLocation    CommandType = "attach-location"
	CmdDetachLocation    CommandType = "detach-location"
)

// Command is the common interface of all mutations the store accepts. The
// set of implementations below is closed: there is no other way to change
// state.
type Command interface {
	What() CommandType // What returns the command type (e.g. "add-person").
}

// AddPerson adds a new person to the ledger.
type AddPerson struct{ Person Person }

// UpdatePerson replaces the person record with the same id.
type UpdatePerson struct{ Person Person }

// DeletePerson removes a person and cascades to all their transactions.
type DeletePerson struct{ ID string }

// AddLocation adds a new location to the ledger.
type AddLocation struct{ Location Location }

// DeleteLocation removes a location, cascades to all transactions referencing
// it, and strips it from every person's embedded location list.
type DeleteLocation struct{ ID string }

// AddTransaction records a new credit or repayment.
type AddTransaction struct{ Transaction Transaction }

// UpdateTransaction replaces the transaction record with the same id. The
// stored OccurredAt timestamp is kept regardless of the payload.
type UpdateTransaction struct{ Transaction Transaction }

// DeleteTransaction removes a transaction and reverses its contribution to
// the dashboard.
type DeleteTransaction struct{ ID string }

// AttachLocation adds a copy of the location to the person's embedded list.
// Attaching an already-present location is a no-op.
type AttachLocation struct{ PersonID, LocationID string }

// DetachLocation removes the location from the person's embedded list.
// Detaching an absent location is a no-op.
type DetachLocation struct{ PersonID, LocationID string }

func (AddPerson) What() CommandType         { return CmdAddPerson }
func (UpdatePerson) What() CommandType      { return CmdUpdatePerson }
func (DeletePerson) What() CommandType      { return CmdDeletePerson }
func (AddLocation) What() CommandType       { return CmdAddLocation }
func (DeleteLocation) What() CommandType    { return CmdDeleteLocation }
func (AddTransaction) What() CommandType    { return CmdAddTransaction }
func (UpdateTransaction) What() CommandType { return CmdUpdateTransaction }
func (DeleteTransaction) What() CommandType { return CmdDeleteTransaction }
func (AttachLocation) What() CommandType    { return CmdAttachLocation }
func (DetachLocation) What() CommandType    { return CmdDetachLocation }
