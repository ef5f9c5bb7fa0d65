package prompts

const (
	WelcomeLogin = "login"
	WelcomeQuit  = "quit"
)

func PromptWelcome() (string, error) {
	return PromptChoice("FixPay: collect UPI payments at your counter", []Choice{
		{Label: "Get started", Value: WelcomeLogin},
		{Label: "Quit", Value: WelcomeQuit},
	}, WelcomeLogin)
}
