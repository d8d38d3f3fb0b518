package order

import "sitebuilder/internal/pkg/errs"

func errWebsiteNameRequired() error {
	return errs.NewValueIsRequiredError("requirements.websiteName")
}

// ContactInfo holds the customer's preferred contact details for the build.
// All fields are optional free text.
type ContactInfo struct {
	Name  string
	Email string
	Phone string
}

// Requirements captures what the customer wants built. The website name is the
// only required field; everything else is free text gathered at checkout or
// during the requirements phase.
//
// Requirements is a value object: owners replace it wholesale through
// Order.UpdateRequirements while the order is still early in its lifecycle.
type Requirements struct {
	websiteName     string
	description     string
	requiredPages   string
	preferredColors string
	references      string
	contactInfo     ContactInfo

	isConstructed bool
}

// NewRequirements creates a validated Requirements value object.
// The website name must not be empty.
func NewRequirements(
	websiteName string,
	description string,
	requiredPages string,
	preferredColors string,
	references string,
	contactInfo ContactInfo,
) (Requirements, error) {
	if websiteName == "" {
		return Requirements{}, errWebsiteNameRequired()
	}

	return Requirements{
		websiteName:     websiteName,
		description:     description,
		requiredPages:   requiredPages,
		preferredColors: preferredColors,
		references:      references,
		contactInfo:     contactInfo,
		isConstructed:   true,
	}, nil
}

// Validate ensures the requirements were created via NewRequirements.
func (r Requirements) Validate() error {
	if !r.isConstructed {
		return errWebsiteNameRequired()
	}
	return nil
}

// WebsiteName returns the name of the website to build.
func (r Requirements) WebsiteName() string {
	return r.websiteName
}

// Description returns the free-text project description.
func (r Requirements) Description() string {
	return r.description
}

// RequiredPages returns the pages the customer asked for.
func (r Requirements) RequiredPages() string {
	return r.requiredPages
}

// PreferredColors returns the customer's color preferences.
func (r Requirements) PreferredColors() string {
	return r.preferredColors
}

// References returns links to sites the customer likes.
func (r Requirements) References() string {
	return r.references
}

// ContactInfo returns the customer's contact details for the build.
func (r Requirements) ContactInfo() ContactInfo {
	return r.contactInfo
}
