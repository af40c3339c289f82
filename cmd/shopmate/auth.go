package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/shopmate/internal/domain/auth"
)

type loginOptions struct {
	email    string
	password string
}

func newLoginCmd(root *rootFlags) *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "Account email")
	cmd.Flags().StringVar(&opts.password, "password", "", "Account password (prompted when omitted)")
	return cmd
}

func runLogin(cmd *cobra.Command, root *rootFlags, opts *loginOptions) error {
	prompt := newPrompter(cmd)

	email, err := prompt.value("Email", opts.email, false)
	if err != nil {
		return newCommandError("log in", "reading the email", err, "Pass --email.")
	}
	password, err := prompt.value("Password", opts.password, true)
	if err != nil {
		return newCommandError("log in", "reading the password", err, "Pass --password.")
	}

	app, err := newAppContext(cmd, root, logToStderr)
	if err != nil {
		return err
	}
	defer app.close()

	if _, err := app.service.Login(app.ctx, auth.Credentials{Email: email, Password: password}); err != nil {
		return errors.New(auth.FailureMessage(err, auth.LoginFailedMessage))
	}

	user, _ := app.service.Session().Current()
	fmt.Fprintf(cmd.OutOrStdout(), "Login successful! Welcome back, %s.\n", user.DisplayName())
	return nil
}

type registerOptions struct {
	name     string
	email    string
	password string
	confirm  string
}

func newRegisterCmd(root *rootFlags) *cobra.Command {
	opts := &registerOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Full name")
	cmd.Flags().StringVar(&opts.email, "email", "", "Account email")
	cmd.Flags().StringVar(&opts.password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&opts.confirm, "confirm-password", "", "Password again (prompted when omitted)")
	return cmd
}

func runRegister(cmd *cobra.Command, root *rootFlags, opts *registerOptions) error {
	prompt := newPrompter(cmd)

	form := auth.Registration{}
	var err error
	if form.Name, err = prompt.value("Full name", opts.name, false); err != nil {
		return newCommandError("register", "reading the name", err, "Pass --name.")
	}
	if form.Email, err = prompt.value("Email", opts.email, false); err != nil {
		return newCommandError("register", "reading the email", err, "Pass --email.")
	}
	if form.Password, err = prompt.value("Password", opts.password, true); err != nil {
		return newCommandError("register", "reading the password", err, "Pass --password.")
	}
	if form.Confirm, err = prompt.value("Confirm password", opts.confirm, true); err != nil {
		return newCommandError("register", "reading the password confirmation", err, "Pass --confirm-password.")
	}

	app, err := newAppContext(cmd, root, logToStderr)
	if err != nil {
		return err
	}
	defer app.close()

	if _, err := app.service.Register(app.ctx, form); err != nil {
		return errors.New(auth.FailureMessage(err, auth.RegisterFailedMessage))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Registration successful! Please login to continue.")
	return nil
}

func newLogoutCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, logToStderr)
			if err != nil {
				return err
			}
			defer app.close()

			if !app.service.Session().LoggedIn() {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			if _, err := app.service.Logout(app.ctx); err != nil {
				return newCommandError("log out", "clearing the session", err, "Check permissions on "+app.cfg.StorePath()+".")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, logToStderr)
			if err != nil {
				return err
			}
			defer app.close()

			user, ok := app.service.Session().Current()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in. Run 'shopmate login'.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.DisplayName(), user.Email)
			return nil
		},
	}
}

// prompter asks for values missing from flags. Secrets are read without
// echo when stdin is a terminal.
type prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	return &prompter{in: in, out: cmd.ErrOrStderr(), reader: bufio.NewReader(in)}
}

func (p *prompter) value(label, given string, secret bool) (string, error) {
	if given != "" {
		return given, nil
	}

	fmt.Fprintf(p.out, "%s: ", label)
	if file, ok := p.in.(*os.File); ok && secret && term.IsTerminal(int(file.Fd())) {
		data, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
