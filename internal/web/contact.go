package web

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/devfolio/internal/contact"
)

const (
	msgSending = "Sending…"
	msgSent    = "Message Sent!"
	msgThanks  = "Thank you for your message! I'll get back to you soon."
	msgFailed  = "Sorry, there was an error sending your message. Please try again later."
)

// fieldView is one input as the template renders it.
type fieldView struct {
	Name  string
	Label string
	Value string
	Error string
}

// contactView is the data behind contact.html.
type contactView struct {
	Fields  []fieldView
	Status  string
	Notice  string
	Detail  string
	Pending bool
}

var fieldLabels = map[contact.Field]string{
	contact.FieldName:    "Name",
	contact.FieldEmail:   "Email",
	contact.FieldSubject: "Subject",
	contact.FieldMessage: "Message",
}

func formView(snap contact.Snapshot) contactView {
	v := contactView{Status: snap.Status.String()}
	for _, f := range contact.Fields {
		v.Fields = append(v.Fields, fieldView{
			Name:  string(f),
			Label: fieldLabels[f],
			Value: snap.Form.Get(f),
			Error: snap.Errors[f],
		})
	}
	switch snap.Status {
	case contact.StatusSubmitting:
		v.Notice = msgSending
		v.Pending = true
	case contact.StatusSuccess:
		v.Notice = msgSent
		v.Detail = msgThanks
	case contact.StatusError:
		v.Notice = msgFailed
	}
	return v
}

// sendContext detaches the send from the request so a closed tab does not
// abort delivery, and applies the configured timeout.
func (s *Server) sendContext(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := context.WithoutCancel(c.Request.Context())
	if s.cfg.Contact.SendTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.Contact.SendTimeout)
	}
	return context.WithCancel(ctx)
}

// HTMX contact form fragment
func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", formView(s.snapshot(c)))
}

// Handle contact form submission with HTMX. Every outcome is rendered into
// the fragment, so the status code stays 200 for htmx to swap it in.
func (s *Server) handleContactSubmit(c *gin.Context) {
	id, sess := s.session(c)

	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}
	sess.Apply(form)

	ctx, cancel := s.sendContext(c)
	defer cancel()
	out := sess.Submit(ctx)
	if out.Ignored {
		log.Printf("contact: session %s already sending, ignoring submit", id)
	}

	c.HTML(http.StatusOK, "contact.html", formView(sess.Snapshot()))
}

// handleContactField applies a single field edit. The field name arrives in
// "field" and its value under the field's own name.
func (s *Server) handleContactField(c *gin.Context) {
	_, sess := s.session(c)

	field, err := contact.ParseField(c.PostForm("field"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if err := sess.Edit(field, c.PostForm(string(field))); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	c.HTML(http.StatusOK, "contact.html", formView(sess.Snapshot()))
}

func (s *Server) handleAPISnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshot(c))
}

type submitResponse struct {
	Status  contact.Status `json:"status"`
	Errors  contact.Errors `json:"errors,omitempty"`
	Message string         `json:"message,omitempty"`
}

func (s *Server) handleAPISubmit(c *gin.Context) {
	_, sess := s.session(c)

	var form contact.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	sess.Apply(form)

	ctx, cancel := s.sendContext(c)
	defer cancel()
	out := sess.Submit(ctx)

	resp := submitResponse{Status: out.Status}
	switch {
	case out.Ignored:
		resp.Message = msgSending
		c.JSON(http.StatusAccepted, resp)
	case len(out.Errors) > 0:
		resp.Errors = out.Errors
		c.JSON(http.StatusUnprocessableEntity, resp)
	case out.Err != nil:
		resp.Message = msgFailed
		c.JSON(http.StatusBadGateway, resp)
	default:
		resp.Message = msgSent
		c.JSON(http.StatusOK, resp)
	}
}
