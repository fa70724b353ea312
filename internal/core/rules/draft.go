package rules

// Field names recognized by form drafts.
const (
	FieldName            = "name"
	FieldLoginID         = "loginId"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// FormDraft tracks the field values and per-field validity of one form
// instance. Validity is tri-state: fields start Unset and flip to
// Valid/Invalid on the first edit. Setting the password re-derives the
// confirmPassword result, so the live indicators can never go stale against
// the submit-time aggregate.
type FormDraft struct {
	policy   PasswordPolicy
	required []string
	values   map[string]string
	results  map[string]Result
}

// NewFormDraft creates a draft validating the given required fields under
// the given password policy. Unknown names in required are ignored at
// evaluation time, like every other unrecognized field.
func NewFormDraft(policy PasswordPolicy, required ...string) *FormDraft {
	return &FormDraft{
		policy:   policy,
		required: required,
		values:   make(map[string]string),
		results:  make(map[string]Result),
	}
}

// Set records a new value for field and re-evaluates it. Unrecognized field
// names store the value but stay Unset.
func (d *FormDraft) Set(field, value string) {
	d.values[field] = value
	d.evaluate(field)
	if field == FieldPassword {
		// confirmPassword validity is derived from both inputs.
		if _, touched := d.values[FieldConfirmPassword]; touched {
			d.evaluate(FieldConfirmPassword)
		}
	}
}

// Value returns the current value of field.
func (d *FormDraft) Value(field string) string { return d.values[field] }

// Result returns the tri-state validity of field. Untouched fields report
// Unset.
func (d *FormDraft) Result(field string) Result { return d.results[field] }

func (d *FormDraft) evaluate(field string) {
	switch field {
	case FieldName:
		d.results[field] = Name(d.values[field])
	case FieldLoginID:
		d.results[field] = LoginID(d.values[field])
	case FieldEmail:
		d.results[field] = Email(d.values[field])
	case FieldPassword:
		d.results[field] = Password(d.values[field], d.policy)
	case FieldConfirmPassword:
		d.results[field] = ConfirmPassword(d.values[FieldPassword], d.values[FieldConfirmPassword])
	}
}

// ValidationError reports the first failing rule at submit time, carrying
// the single human-readable message shown inline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate computes the submit-time aggregate: every recognized required
// field is re-evaluated from its current value and must pass. The first
// failing rule aborts with its message. Unknown names in required are
// skipped, consistent with Set.
func (d *FormDraft) Validate() error {
	for _, field := range d.required {
		if !recognized(field) {
			continue
		}
		d.evaluate(field)
		if !d.results[field].Ok() {
			return &ValidationError{Field: field, Message: message(field)}
		}
	}
	return nil
}

func recognized(field string) bool {
	switch field {
	case FieldName, FieldLoginID, FieldEmail, FieldPassword, FieldConfirmPassword:
		return true
	}
	return false
}

func message(field string) string {
	switch field {
	case FieldName:
		return "Name must be at least 2 characters"
	case FieldLoginID:
		return "Login ID must be 6-12 characters"
	case FieldEmail:
		return "Please enter a valid email address"
	case FieldPassword:
		return "Password does not meet the complexity requirements"
	case FieldConfirmPassword:
		return "Passwords do not match"
	default:
		return field + " is invalid"
	}
}
