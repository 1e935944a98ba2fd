// Package wheelads scrapes vehicle wheel and tyre classified ads and turns
// their free-form German text into a fixed set of wheel and tyre attributes.
//
// This package contains domain types, the extraction engine, and the
// interfaces its collaborators implement, following Ben Johnson's Standard
// Package Layout. Implementations live in subdirectories named after their
// primary dependency (e.g., goquery/, sqlite/, http/).
package wheelads
