package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/logrusorgru/aurora"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/prognosis/feature"
	"github.com/bitmark-inc/prognosis/model"
	"github.com/bitmark-inc/prognosis/predict"
	"github.com/bitmark-inc/prognosis/schema"
)

const logPrefix = "cli"

// State is one step of the interactive prompt loop.
type State int

const (
	AwaitAge State = iota
	AwaitSex
	AwaitSymptoms
	AwaitConditions
	ShowResult
	AwaitContinue
	Terminate
)

// Session drives one operator through the prompt loop: collect a profile,
// show the prediction, ask whether to go again. Invalid answers re-prompt
// without advancing the state.
type Session struct {
	id         string
	in         *bufio.Scanner
	out        io.Writer
	scaler     *model.ScalingParameters
	classifier model.Classifier
	localizer  *i18n.Localizer

	state   State
	profile schema.PatientProfile
}

// NewSession - a session reading answers from in and writing prompts and
// results to out. Reader and writer are injected so tests can script the
// whole conversation.
func NewSession(in io.Reader, out io.Writer, scaler *model.ScalingParameters, classifier model.Classifier, localizer *i18n.Localizer) *Session {
	return &Session{
		id:         uuid.New().String(),
		in:         bufio.NewScanner(in),
		out:        out,
		scaler:     scaler,
		classifier: classifier,
		localizer:  localizer,
		state:      AwaitAge,
	}
}

// Run loops until the operator answers "no" to the continue prompt or the
// input stream ends.
func (s *Session) Run() error {
	log.WithFields(log.Fields{"prefix": logPrefix, "session": s.id}).Info("session started")

	for s.state != Terminate {
		if err := s.step(); nil != err {
			if err == io.EOF {
				break
			}
			return err
		}
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "session": s.id}).Info("session ended")
	return nil
}

// step performs one state transition.
func (s *Session) step() error {
	switch s.state {
	case AwaitAge:
		return s.awaitAge()
	case AwaitSex:
		return s.awaitSex()
	case AwaitSymptoms:
		return s.awaitSymptoms()
	case AwaitConditions:
		return s.awaitConditions()
	case ShowResult:
		s.showResult()
		return nil
	case AwaitContinue:
		return s.awaitContinue()
	}
	return nil
}

func (s *Session) awaitAge() error {
	answer, err := s.ask(s.text("prompt.age", "Enter the patient's age: "))
	if nil != err {
		return err
	}

	age, err := feature.ParseAge(answer)
	if nil != err {
		s.say(s.text("invalid.age", "Age must be a non-negative whole number."))
		return nil
	}

	s.profile.Age = age
	s.state = AwaitSex
	return nil
}

func (s *Session) awaitSex() error {
	answer, err := s.ask(s.text("prompt.sex", "Enter the patient's sex (male/female): "))
	if nil != err {
		return err
	}

	sex, err := feature.ParseSex(answer)
	if nil != err {
		s.say(s.text("invalid.sex", "Please answer male, female, m or f."))
		return nil
	}

	s.profile.Sex = sex
	s.state = AwaitSymptoms
	return nil
}

func (s *Session) awaitSymptoms() error {
	s.say(s.text("menu.symptoms", "Known symptoms:"))
	for _, symptom := range schema.Symptoms {
		s.say(fmt.Sprintf("  %d. %s - %s", symptom.Code, symptom.Name, symptom.Desc))
	}

	codes, err := s.askCodes("prompt.symptoms",
		"Enter symptom codes, comma separated (0 for none): ",
		func(code int) bool {
			_, ok := schema.SymptomFromCode[code]
			return ok
		})
	if nil != err {
		return err
	}
	if codes == nil {
		return nil
	}

	s.profile.SymptomCodes = codes
	s.state = AwaitConditions
	return nil
}

func (s *Session) awaitConditions() error {
	s.say(s.text("menu.conditions", "Known pre-existing conditions:"))
	for _, condition := range schema.Conditions {
		s.say(fmt.Sprintf("  %d. %s - %s", condition.Code, condition.Name, condition.Desc))
	}

	codes, err := s.askCodes("prompt.conditions",
		"Enter pre-existing condition codes, comma separated (0 for none): ",
		func(code int) bool {
			_, ok := schema.ConditionFromCode[code]
			return ok
		})
	if nil != err {
		return err
	}
	if codes == nil {
		return nil
	}

	s.profile.ConditionCodes = codes
	s.state = ShowResult
	return nil
}

// askCodes prompts for a code list and validates every code with known. A
// nil, nil return means the answer was rejected and the state must not
// advance.
func (s *Session) askCodes(messageID, fallback string, known func(int) bool) ([]int, error) {
	answer, err := s.ask(s.text(messageID, fallback))
	if nil != err {
		return nil, err
	}

	codes, err := feature.ParseCodes(answer)
	if nil != err {
		s.say(s.text("invalid.codes", "Please enter known codes from the list, comma separated."))
		return nil, nil
	}

	for _, code := range codes {
		if !known(code) {
			s.say(s.text("invalid.codes", "Please enter known codes from the list, comma separated."))
			return nil, nil
		}
	}

	return codes, nil
}

func (s *Session) showResult() {
	s.state = AwaitContinue

	vector, err := feature.Encode(s.profile)
	if nil != err {
		// codes were validated at prompt time, so this is an artifact
		// or schema problem, not an operator mistake
		log.WithFields(log.Fields{"prefix": logPrefix, "session": s.id, "error": err}).Error("encode profile")
		s.say(s.text("result.failed", "Could not evaluate this profile, please start over."))
		return
	}

	result, err := predict.Predict(vector, s.scaler, s.classifier)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "session": s.id, "error": err}).Error("run inference")
		s.say(s.text("result.failed", "Could not evaluate this profile, please start over."))
		return
	}

	log.WithFields(log.Fields{
		"prefix":      logPrefix,
		"session":     s.id,
		"probability": result.Probability,
		"label":       result.Label,
	}).Info("prediction")

	s.say(fmt.Sprintf(s.text("result.probability", "Fatality risk probability: %.4f (%.1f%%)"),
		result.Probability, result.Probability*100))
	s.say(fmt.Sprintf(s.text("result.label", "At-risk label: %t"), result.Label))

	banner := aurora.Bold(aurora.Green(string(result.Risk)))
	if result.Label {
		banner = aurora.Bold(aurora.Red(string(result.Risk)))
	}
	fmt.Fprintf(s.out, "%s\n", banner)
}

func (s *Session) awaitContinue() error {
	answer, err := s.ask(s.text("prompt.continue", "Evaluate another patient? (yes/no): "))
	if nil != err {
		return err
	}

	switch normalizeYesNo(answer) {
	case "yes":
		s.profile = schema.PatientProfile{}
		s.state = AwaitAge
	case "no":
		s.state = Terminate
	default:
		s.say(s.text("invalid.continue", "Please answer yes or no."))
	}
	return nil
}

func (s *Session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)

	if !s.in.Scan() {
		if err := s.in.Err(); nil != err {
			return "", err
		}
		return "", io.EOF
	}

	return s.in.Text(), nil
}

func (s *Session) say(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Session) text(id, fallback string) string {
	return s.localizer.MustLocalize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
}

func normalizeYesNo(answer string) string {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return "yes"
	case "n", "no":
		return "no"
	}
	return ""
}
