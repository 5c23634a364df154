package auth

// Authorizer answers whether a payer has been cleared to pay.
// Implementations start unauthorized and flip once their verification
// action runs; there is no reset.
type Authorizer interface {
	IsAuthorized() bool
}

// SMSAuth authorizes after a one-time code is verified.
type SMSAuth struct {
	authorized bool
}

func NewSMSAuth() *SMSAuth { return &SMSAuth{} }

// VerifyCode authorizes the payer. The code is accepted as given;
// verification itself cannot fail.
func (a *SMSAuth) VerifyCode(code string) {
	a.authorized = true
}

func (a *SMSAuth) IsAuthorized() bool { return a.authorized }

// NotARobot authorizes after a human confirmation.
type NotARobot struct {
	authorized bool
}

func NewNotARobot() *NotARobot { return &NotARobot{} }

func (a *NotARobot) Confirm() {
	a.authorized = true
}

func (a *NotARobot) IsAuthorized() bool { return a.authorized }
