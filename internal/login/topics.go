package login

// Bus topics the controller publishes on. Payloads are JSON.
const (
	// TopicFormState carries a State snapshot after every transition.
	TopicFormState = "login.form.state"

	// TopicSignInSucceeded is published when authentication resolves
	// successfully. Payload: {"email": "..."}.
	TopicSignInSucceeded = "login.signin.succeeded"

	// TopicSignInFailed is published when authentication resolves with a
	// failure. Payload: {"email": "...", "reason": "..."}.
	TopicSignInFailed = "login.signin.failed"
)
