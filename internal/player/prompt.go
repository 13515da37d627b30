package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func WithValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

func Prompt(rw io.ReadWriter, prompt string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	br := bufio.NewReader(rw)

	tries := 0
	var input []byte
	for {
		_, err := rw.Write([]byte(prompt))
		if err != nil {
			return "", err
		}

		input, _, err = br.ReadLine()
		if err != nil {
			return "", err
		}

		if config.validator != nil {
			ok, msg := config.validator(string(input))
			if !ok {
				rw.Write([]byte(msg))

				tries++
				if config.tries > 0 && config.tries == tries {
					rw.Write([]byte("too many tries\n"))
					return "", fmt.Errorf("too many tries")
				}

				continue
			}
		}

		return string(input), nil
	}
}

// PromptSelect shows a numbered option list and returns the chosen
// entry. Used for room selection at login.
func PromptSelect(rw io.ReadWriter, prompt string, options []string) (string, error) {
	if _, err := fmt.Fprintf(rw, "%s\n", prompt); err != nil {
		return "", err
	}
	for i, opt := range options {
		if _, err := fmt.Fprintf(rw, "%2d. %s\n", i+1, opt); err != nil {
			return "", err
		}
	}

	selection, err := Prompt(rw, "Make your selection: ", WithValidator(
		func(str string) (bool, string) {
			i, err := strconv.Atoi(str)
			if err != nil || i < 1 || i > len(options) {
				return false, "Invalid selection!\n"
			}
			return true, ""
		},
	))
	if err != nil {
		return "", err
	}

	i, err := strconv.Atoi(selection)
	if err != nil {
		return "", err
	}
	return options[i-1], nil
}
