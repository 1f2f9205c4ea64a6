package decoder

import (
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/MichalMitros/parts-enricher/internal/platform/models"
)

var (
	// ErrMissingItem is returned when GetItem response has no Item node.
	ErrMissingItem = errors.New("no item data found")
	// ErrAPIFailure is returned when GetItem response reports failure.
	ErrAPIFailure = errors.New("marketplace api error")
)

// DecodeItem decodes GetItem response into item details.
// Errors node with Error severity or Ack=Failure is returned as ErrAPIFailure with its message.
// Missing optional nodes are decoded as zero values.
func DecodeItem(r io.Reader) (*models.ItemDetails, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true

	var (
		item    *Item
		ack     string
		apiErrs []apiError
	)

	for {
		token, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("can't decode item response: %w", err)
		}

		element, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		switch element.Name.Local {
		case "Ack":
			if err := dec.DecodeElement(&ack, &element); err != nil {
				return nil, fmt.Errorf("can't decode ack: %w", err)
			}
		case "Errors":
			var apiErr apiError
			if err := dec.DecodeElement(&apiErr, &element); err != nil {
				return nil, fmt.Errorf("can't decode errors: %w", err)
			}
			apiErrs = append(apiErrs, apiErr)
		case "Item":
			item = &Item{}
			if err := dec.DecodeElement(item, &element); err != nil {
				return nil, fmt.Errorf("can't decode item: %w", err)
			}
		}
	}

	if err := checkFailure(strings.TrimSpace(ack), apiErrs); err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMissingItem
	}

	unescapeItemFields(item)

	return toAppItemDetails(item), nil
}

// checkFailure returns error for failed acknowledgement or any error with Error severity. Warnings are ignored.
func checkFailure(ack string, apiErrs []apiError) error {
	var messages []string
	for _, apiErr := range apiErrs {
		if strings.EqualFold(strings.TrimSpace(apiErr.Severity), "Warning") {
			continue
		}
		messages = append(messages, apiErr.message())
	}
	if len(messages) > 0 {
		return fmt.Errorf("%w: %s", ErrAPIFailure, strings.Join(messages, "; "))
	}
	if strings.EqualFold(ack, "Failure") {
		return fmt.Errorf("%w: ack %s", ErrAPIFailure, ack)
	}
	return nil
}

// unescapeItemFields unescapes html characters from item title and description.
func unescapeItemFields(item *Item) {
	item.Title = html.UnescapeString(item.Title)
	item.Description = html.UnescapeString(item.Description)
}
