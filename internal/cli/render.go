package cli

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/saikaranam22/VA-Demo/internal/config"
	"github.com/saikaranam22/VA-Demo/internal/eligibility"
	"github.com/saikaranam22/VA-Demo/internal/wizard"
)

var disclaimer = []string{
	"This is an estimate only. Final eligibility determination will be made by the VA " +
		"during the formal application process. Individual circumstances may affect eligibility.",
	"We recommend applying even if you're unsure about your eligibility. The VA can provide " +
		"a definitive determination and help you understand all available options.",
}

type benefitGroup struct {
	title string
	items []string
}

var benefits = []benefitGroup{
	{"Health Care Benefits", []string{
		"Comprehensive medical care",
		"Mental health services",
		"Prescription medications",
		"Specialty care services",
	}},
	{"Additional Benefits", []string{
		"Disability compensation",
		"Education benefits",
		"Home loan guaranty",
		"Vocational rehabilitation",
	}},
}

type nextStep struct {
	title       string
	description string
	link        string
}

var nextSteps = []nextStep{
	{
		"Apply for VA Health Care",
		"Complete your formal application online or at a VA facility",
		"https://www.va.gov/health-care/apply/",
	},
	{
		"Find VA Locations",
		"Locate the nearest VA medical center or clinic",
		"https://www.va.gov/find-locations/",
	},
	{
		"Schedule an Appointment",
		"Book your first appointment with a VA healthcare provider",
		"https://www.va.gov/health-care/schedule-view-va-appointments/",
	},
	{
		"Call VA Benefits Hotline",
		"Speak with a VA representative for personalized assistance",
		"tel:1-800-827-1000",
	},
}

func (a *App) renderStep(ctx context.Context) {
	step := a.session.Current()

	switch step {
	case wizard.Landing:
		fmt.Fprintln(a.out, "Find out which VA health care and benefits you may qualify for.")
		fmt.Fprintln(a.out, "It takes 5-10 minutes. Type 'start' to begin.")
		return
	case wizard.Summary:
		a.renderSummary(ctx)
		return
	}

	fmt.Fprintf(a.out, "Step %d: %s\n", step.Number(), step.Title())
	a.renderAnswers(step, a.session.Draft())
	fmt.Fprintln(a.out, "Answer with 'set <field> <value>' or 'ask', then 'next'.")
}

func (a *App) renderAnswers(step wizard.Step, s eligibility.State) {
	c, ok := step.Category()
	if !ok {
		return
	}
	for _, f := range eligibility.Fields(c) {
		v := f.Value(s)
		if v == "" {
			v = "(not answered)"
		}
		fmt.Fprintf(a.out, "  %-30s %s\n", f.Name, v)
	}
}

func (a *App) renderOptions(step wizard.Step) {
	c, ok := step.Category()
	if !ok {
		fmt.Fprintln(a.out, "This step has no questions.")
		return
	}
	for _, f := range eligibility.Fields(c) {
		fmt.Fprintf(a.out, "%s (%s)\n  %s\n", f.Title, f.Name, f.Question)
		if f.Kind == eligibility.KindFlag {
			fmt.Fprintln(a.out, "  answer: yes | no")
			continue
		}
		for _, o := range f.Options {
			fmt.Fprintf(a.out, "  %-14s %s\n", o.Value, o.Label)
		}
	}
}

func (a *App) renderErrors(step wizard.Step, errs eligibility.FieldErrors) {
	fmt.Fprintln(a.out, "Cannot continue, please fix:")
	c, _ := step.Category()
	for _, f := range eligibility.Fields(c) {
		if msg, ok := errs[f.Name]; ok {
			fmt.Fprintf(a.out, "  %s: %s\n", f.Name, msg)
		}
	}
}

func (a *App) renderSummary(ctx context.Context) {
	if a.config.Format == config.FormatJSON {
		a.renderJSON(ctx)
		return
	}

	v := a.session.Evaluate(ctx)
	fmt.Fprintf(a.out, "Step %d: Your %s\n", wizard.Summary.Number(), wizard.Summary.Title())
	fmt.Fprintln(a.out, "Based on your responses, here's what we found about your VA benefits eligibility.")
	fmt.Fprintln(a.out, v.Headline())
	if v.IsEligible {
		fmt.Fprintf(a.out, "Priority Level: %s\n", v.Priority)
	} else {
		fmt.Fprintln(a.out, "Additional information may be needed to determine full eligibility")
	}
	if len(v.Reasons) > 0 {
		fmt.Fprintln(a.out, "Based on:")
		for _, r := range v.Reasons {
			fmt.Fprintf(a.out, "  - %s\n", r)
		}
	}

	fmt.Fprintln(a.out, "Potential Benefits You May Qualify For:")
	for _, g := range benefits {
		fmt.Fprintf(a.out, "  %s\n", g.title)
		for _, item := range g.items {
			fmt.Fprintf(a.out, "    - %s\n", item)
		}
	}

	fmt.Fprintln(a.out, "Recommended Next Steps:")
	for _, s := range nextSteps {
		fmt.Fprintf(a.out, "  - %s: %s\n", s.title, s.link)
		fmt.Fprintf(a.out, "    %s\n", s.description)
	}
	if a.config.ShowDisclaimer {
		fmt.Fprintln(a.out, "Important Disclaimer:")
		for _, p := range disclaimer {
			fmt.Fprintf(a.out, "  %s\n", p)
		}
	}
	fmt.Fprintln(a.out, "Type 'back' to review your answers or 'restart' to start over.")
}

func (a *App) renderJSON(ctx context.Context) {
	b, err := json.MarshalIndent(a.session.Snapshot(ctx), "", "  ")
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, strings.TrimSpace(string(b)))
}
