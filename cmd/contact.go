package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/devfolio/internal/contact"
)

var contactForm contact.Form

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the configured transport",
	Long: `Runs one message through the same validation and delivery path as the
website's contact form. Useful for checking SMTP or webhook settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sess := contact.NewSession(newSender(cfg))
		sess.Apply(contactForm)

		ctx := context.Background()
		if cfg.Contact.SendTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Contact.SendTimeout)
			defer cancel()
		}

		out := sess.Submit(ctx)
		switch {
		case len(out.Errors) > 0:
			for _, f := range contact.Fields {
				if msg, ok := out.Errors[f]; ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f, msg)
				}
			}
			return fmt.Errorf("form is invalid")
		case out.Err != nil:
			return fmt.Errorf("sending message: %w", out.Err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Message Sent!")
		return nil
	},
}

func init() {
	f := contactCmd.Flags()
	f.StringVar(&contactForm.Name, "name", "", "sender name")
	f.StringVar(&contactForm.Email, "email", "", "sender email")
	f.StringVar(&contactForm.Subject, "subject", "", "message subject")
	f.StringVar(&contactForm.Message, "message", "", "message body")
	rootCmd.AddCommand(contactCmd)
}
