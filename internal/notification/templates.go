package notification

// Template keys used by the approval engine
const (
	TemplateRequestCreated      = "request_created"
	TemplateRequestNextApprover = "request_next_approver"
	TemplateRequestApproved     = "request_approved"
	TemplateRequestRejected     = "request_rejected"
)

// Template is one notification message definition. Subject and Body carry
// ${key} or {{key}} placeholders resolved at render time.
type Template struct {
	Key     string
	Subject string
	Body    string
}

// defaultTemplates are the built-in messages sent by the engine. Approver
// names render through employee_name, which falls back to staff_name and
// user_name when the caller supplies legacy keys.
var defaultTemplates = map[string]Template{
	TemplateRequestCreated: {
		Key:     TemplateRequestCreated,
		Subject: "Approval required: ${request_type} ${request_number}",
		Body: "Dear ${employee_name},\n\n" +
			"A new ${request_type} request ${request_number} raised by " +
			"${requester_name} is awaiting your approval at level ${sequence}.\n\n" +
			"Regards,\nDCC SFA",
	},
	TemplateRequestNextApprover: {
		Key:     TemplateRequestNextApprover,
		Subject: "Approval required: ${request_type} ${request_number}",
		Body: "Dear ${employee_name},\n\n" +
			"The ${request_type} request ${request_number} has cleared level " +
			"${previous_sequence} and now awaits your approval at level ${sequence}.\n\n" +
			"Regards,\nDCC SFA",
	},
	TemplateRequestApproved: {
		Key:     TemplateRequestApproved,
		Subject: "${request_type} ${request_number} approved",
		Body: "Dear ${employee_name},\n\n" +
			"Your ${request_type} request ${request_number} has been fully " +
			"approved.\n\n" +
			"Regards,\nDCC SFA",
	},
	TemplateRequestRejected: {
		Key:     TemplateRequestRejected,
		Subject: "${request_type} ${request_number} rejected",
		Body: "Dear ${employee_name},\n\n" +
			"Your ${request_type} request ${request_number} was rejected by " +
			"${actor_name}.\nRemarks: ${remarks}\n\n" +
			"Regards,\nDCC SFA",
	},
}

// LookupTemplate returns the template registered under key
func LookupTemplate(key string) (Template, bool) {
	tpl, ok := defaultTemplates[key]
	return tpl, ok
}
