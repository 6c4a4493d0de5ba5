// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package contact defines the contact record the pipeline produces and the
// builder that assembles one from extracted fields.
package contact

// Contact is a complete address-book entry. Every field is a plain string;
// absent data is the empty string, never a sentinel.
type Contact struct {
	Name      string `json:"name" yaml:"name"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	Prefix    string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix    string `json:"suffix,omitempty" yaml:"suffix,omitempty"`

	Email string `json:"email" yaml:"email"`
	// Phone is the display string of up to three numbers joined with " | ",
	// type markers included. The typed fields below carry bare numbers.
	Phone       string `json:"phone" yaml:"phone"`
	MobilePhone string `json:"mobilePhone,omitempty" yaml:"mobilePhone,omitempty"`
	WorkPhone   string `json:"workPhone,omitempty" yaml:"workPhone,omitempty"`
	HomePhone   string `json:"homePhone,omitempty" yaml:"homePhone,omitempty"`
	FaxPhone    string `json:"faxPhone,omitempty" yaml:"faxPhone,omitempty"`

	Organization string `json:"organization" yaml:"organization"`
	Title        string `json:"title" yaml:"title"`
	Department   string `json:"department,omitempty" yaml:"department,omitempty"`

	// Address is the joined multi-line address; the component fields are
	// parsed out of it by the builder and stay consistent with it.
	Address string `json:"address" yaml:"address"`
	Street  string `json:"street,omitempty" yaml:"street,omitempty"`
	City    string `json:"city,omitempty" yaml:"city,omitempty"`
	State   string `json:"state,omitempty" yaml:"state,omitempty"`
	Zipcode string `json:"zipcode,omitempty" yaml:"zipcode,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`

	Website  string `json:"website" yaml:"website"`
	Message1 string `json:"message1,omitempty" yaml:"message1,omitempty"`
	Message2 string `json:"message2,omitempty" yaml:"message2,omitempty"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// HasContactMethod reports whether the contact can be reached at all.
func (c Contact) HasContactMethod() bool {
	return c.Email != "" || c.Phone != "" || c.MobilePhone != "" ||
		c.WorkPhone != "" || c.HomePhone != ""
}
