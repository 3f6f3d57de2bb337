package mail

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const senderName = "Bible Kaloltsavam"

func send(toName, toEmail, subject, plainText, htmlText string) error {
	from := mail.NewEmail(senderName, os.Getenv("EMAIL_FROM"))
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlText)

	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: %d - %s", response.StatusCode, response.Body)
	}
	return nil
}

func SendVerificationEmail(to, verificationURL string) error {
	subject := "Verify Your Email"
	plainText := fmt.Sprintf("Click the link to verify your email: %s", verificationURL)
	htmlText := fmt.Sprintf(`
        <html>
        <body>
            <h2>Email Verification</h2>
            <p>Thank you for registering! Please verify your email by clicking the link below:</p>
            <p><a href="%s">Verify Email</a></p>
            <p>If you didn't create this account, you can safely ignore this email.</p>
        </body>
        </html>
    `, verificationURL)

	return send("", to, subject, plainText, htmlText)
}

func SendAppealReceived(toName, to string, appealID int64) error {
	subject := "Your Appeal Has Been Received"
	plainText := fmt.Sprintf(
		"Hi %s,\n\nYour appeal (reference #%d) has been recorded. "+
			"Appeals are reviewed by an independent committee and typically take 3-5 business days. "+
			"You will receive status updates via email.\n", toName, appealID)
	htmlText := fmt.Sprintf(`
        <html>
        <body>
            <h2>Appeal Received</h2>
            <p>Hi %s,</p>
            <p>Your appeal (reference <strong>#%d</strong>) has been recorded.</p>
            <p>Appeals are reviewed by an independent committee and typically take 3-5 business days.
            You will receive status updates via email.</p>
        </body>
        </html>
    `, toName, appealID)

	return send(toName, to, subject, plainText, htmlText)
}

func SendAppealStatusUpdate(toName, to, status string) error {
	subject := "Appeal Status Update"
	plainText := fmt.Sprintf("Hi %s,\n\nThe status of your appeal has changed to: %s\n", toName, status)
	htmlText := fmt.Sprintf(`
        <html>
        <body>
            <h2>Appeal Status Update</h2>
            <p>Hi %s,</p>
            <p>The status of your appeal has changed to: <strong>%s</strong></p>
        </body>
        </html>
    `, toName, status)

	return send(toName, to, subject, plainText, htmlText)
}
