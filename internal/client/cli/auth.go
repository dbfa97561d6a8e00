package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

// SignUp prompts for the account details and registers. It leaves the
// current session untouched.
func (a *App) SignUp(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone (optional)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.session.SignUp(ctx, username, string(password), email, phone)
	if !res.Succeeded {
		return messageError(res.Message)
	}

	if res.Message != "" {
		fmt.Fprintln(a.out, res.Message)
	} else {
		fmt.Fprintln(a.out, "Account created")
	}
	return nil
}

// SignIn prompts for credentials and opens a session. A failed attempt
// keeps whatever session was there before.
func (a *App) SignIn(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.session.SignIn(ctx, username, string(password))
	if !res.Succeeded {
		return messageError(res.Message)
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", a.session.User().Username)
	return nil
}

func (a *App) SignOut(ctx context.Context) error {
	a.session.SignOut(ctx)
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// Verify confirms the e-mail address with the code given as the argument
// or typed at the prompt.
func (a *App) Verify(ctx context.Context, args []string) error {
	code, err := a.arg(args, "Enter verification code")
	if err != nil {
		return err
	}

	msg, err := a.account.VerifyEmail(ctx, code)
	if err != nil {
		return err
	}
	if msg == "" {
		msg = "Email verified"
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) Resend(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.account.ResendVerification(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Verification code sent")
	return nil
}

func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.account.ForgotPassword(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Check your email for the reset token")
	return nil
}

// Reset sets a new password with the token from the reset e-mail.
func (a *App) Reset(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Repeat new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.account.ResetPassword(ctx, token, string(password), string(confirm)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed, you can log in now")
	return nil
}

// arg returns the first argument, or asks for it when there is none.
func (a *App) arg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}
