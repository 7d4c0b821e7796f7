package conversion

import (
	"context"
	"errors"
	"time"

	"convertor/internal/domain/apierr"
	"convertor/internal/domain/user"
)

// State - starea unei încercări de conversie.
type State int

const (
	StateIdle State = iota
	StateFileSelected
	StateFormatChosen
	StateConverting
	StateSucceeded
	StateLimitExceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFileSelected:
		return "file_selected"
	case StateFormatChosen:
		return "format_chosen"
	case StateConverting:
		return "converting"
	case StateSucceeded:
		return "succeeded"
	case StateLimitExceeded:
		return "limit_exceeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SuccessMessage - mesajul afișat la acceptarea conversiei de către backend.
const SuccessMessage = "Conversie finalizată cu succes!"

const unauthenticatedMessage = "Utilizatorul nu este autentificat."

// Submitter trimite înregistrarea de utilizare către backend.
type Submitter interface {
	SubmitUsage(ctx context.Context, entry UsageLog) error
}

// SessionReader citește utilizatorul autentificat curent.
type SessionReader interface {
	Read() (*user.User, error)
}

// Workflow - mașina de stări a unei încercări de conversie:
//
//	Idle → FileSelected → FormatChosen → Converting → {Succeeded, LimitExceeded, Failed}
//
// O singură încercare poate fi în zbor per instanță; toate eșecurile devin
// stare vizibilă (State + Message), nu erori propagate. Nu este sigură pentru
// acces concurent - tranzițiile sunt serializate de bucla de interacțiune.
type Workflow struct {
	session SessionReader
	submit  Submitter
	delay   time.Duration
	wait    func(ctx context.Context, d time.Duration) error

	state    State
	fileName string
	fileSize int64
	format   Format
	message  string
}

// NewWorkflow creează o încercare nouă, în starea Idle. Întârzierea simulează
// procesarea asincronă a imaginii; transcodarea reală are loc în backend.
func NewWorkflow(session SessionReader, submit Submitter, delay time.Duration) *Workflow {
	return &Workflow{
		session: session,
		submit:  submit,
		delay:   delay,
		wait:    defaultWait,
	}
}

func (w *Workflow) State() State     { return w.state }
func (w *Workflow) FileName() string { return w.fileName }
func (w *Workflow) FileSize() int64  { return w.fileSize }
func (w *Workflow) Format() Format   { return w.format }

// Message - mesajul de rezultat al ultimei încercări (succes sau eroare).
func (w *Workflow) Message() string { return w.message }

// SelectFile alege fișierul sursă. Selectarea unui fișier nou aruncă
// întotdeauna formatul ales anterior și orice mesaj de rezultat rămas.
func (w *Workflow) SelectFile(name string, size int64) error {
	if w.state == StateConverting {
		return ErrBusy
	}

	w.fileName = name
	w.fileSize = size
	w.format = ""
	w.message = ""
	w.state = StateFileSelected

	return nil
}

// TargetFormats - formatele permise pentru fișierul selectat.
func (w *Workflow) TargetFormats() []Format {
	if w.fileName == "" {
		return nil
	}
	return TargetFormats(w.fileName)
}

// ChooseFormat alege formatul țintă. Propriul format al sursei și formatele
// din afara mulțimii canonice sunt respinse.
func (w *Workflow) ChooseFormat(f Format) error {
	if w.state == StateConverting {
		return ErrBusy
	}
	if w.fileName == "" {
		return ErrNoFile
	}

	for _, allowed := range TargetFormats(w.fileName) {
		if allowed == f {
			w.format = f
			w.state = StateFormatChosen
			return nil
		}
	}

	return ErrFormatNotAllowed
}

// Start rulează încercarea: întârzierea de procesare, apoi exact o trimitere
// a înregistrării de utilizare. Fără fișier sau format este no-op (gardă de
// precondiție), la fel în timpul unei conversii în curs sau după succes -
// singura cale spre o încercare nouă după succes este Reset.
func (w *Workflow) Start(ctx context.Context) {
	if w.state == StateConverting || w.state == StateSucceeded {
		return
	}
	if w.fileName == "" || w.format == "" {
		return
	}

	w.state = StateConverting
	w.message = ""

	// Precondiție locală: fără sesiune nu se face niciun apel de rețea.
	u, err := w.session.Read()
	if err != nil {
		w.fail(unauthenticatedMessage)
		return
	}

	if err := w.wait(ctx, w.delay); err != nil {
		w.fail(apierr.GenericMessage)
		return
	}

	entry := UsageLog{
		UserID:         u.UserID,
		ConversionType: Type(w.fileName, w.format),
		Status:         StatusSuccess,
		FileSize:       w.fileSize,
	}

	if err := w.submit.SubmitUsage(ctx, entry); err != nil {
		var apiErr *apierr.Error
		if errors.As(err, &apiErr) {
			if apiErr.Code.IsLimit() {
				w.state = StateLimitExceeded
				w.message = apiErr.Message
				return
			}
			w.fail(apiErr.Message)
			return
		}
		w.fail(apierr.GenericMessage)
		return
	}

	w.state = StateSucceeded
	w.message = SuccessMessage
}

// Reset întoarce încercarea în Idle: fișier, format și mesaj sunt șterse.
func (w *Workflow) Reset() error {
	if w.state == StateConverting {
		return ErrBusy
	}

	w.fileName = ""
	w.fileSize = 0
	w.format = ""
	w.message = ""
	w.state = StateIdle

	return nil
}

// fail - tranziție în Failed; fișierul și formatul rămân pentru reîncercare.
func (w *Workflow) fail(message string) {
	w.state = StateFailed
	w.message = message
}

func defaultWait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
