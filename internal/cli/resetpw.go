package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"shopfront/internal/common"
	"shopfront/internal/resetflow"
)

// redirectDelay mimics the short pause before the post-reset redirect.
var redirectDelay = 2 * time.Second

// ResetPassword runs the interactive forgotten-password wizard: email,
// mailed code, new password. Completing it signs the user in with the
// fresh token. Typing "back" walks one step backwards, "restart" returns
// to the email step, "resend" asks for another code, empty input quits.
func (a *App) ResetPassword(ctx context.Context) error {
	flow := resetflow.New(a.api, a.tokens, a.session, a.log)
	defer flow.Close()

	for {
		switch flow.Step() {
		case resetflow.StepEmail:
			email, err := getSimpleText(a.reader, "Account email (empty to cancel)", os.Stdout)
			if err != nil {
				return err
			}
			if email == "" {
				fmt.Println("Reset cancelled.")
				return nil
			}
			fmt.Println(flow.SubmitEmail(ctx, email).Message)

		case resetflow.StepOtp:
			prompt := "6-digit code (or: resend / back / restart; empty to cancel)"
			code, err := getSimpleText(a.reader, prompt, os.Stdout)
			if err != nil {
				return err
			}
			switch code {
			case "":
				fmt.Println("Reset cancelled.")
				return nil
			case "resend":
				fmt.Println(flow.Resend(ctx).Message)
			case "back":
				flow.Back()
			case "restart":
				flow.StartOver()
			default:
				fmt.Println(flow.SubmitOtp(ctx, code).Message)
			}

		case resetflow.StepNewPassword:
			password, err := getPassword(os.Stdout, "New password")
			if err != nil {
				return err
			}
			confirm, err := getPassword(os.Stdout, "Repeat password")
			if err != nil {
				return err
			}
			res := flow.SubmitNewPassword(ctx, string(password), string(confirm))
			common.WipeByteArray(password)
			common.WipeByteArray(confirm)
			fmt.Println(res.Message)

		case resetflow.StepDone:
			if flow.SignedIn() {
				fmt.Println("You are signed in. Returning to the shop...")
				time.Sleep(redirectDelay)
			} else {
				fmt.Println("Password updated. Sign in with your new password.")
			}
			return nil
		}
	}
}
