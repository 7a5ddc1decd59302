// Package services contains the application services behind the admin
// screens, decoupled from both the terminal surface and the HTTP transport.
//
// Three controllers make up the core:
//
//   - Collection: holds the records fetched for one screen plus a derived,
//     search-narrowed view. The collection is only ever replaced wholesale by
//     Refresh; a failed refresh leaves it untouched.
//   - ConfirmFlow: gates every delete behind an explicit confirmation naming
//     the target record, so one stray keystroke cannot mutate backend state.
//   - Editor: the create/update workflow for a location draft, including
//     image staging, paired preview/file bookkeeping, and multipart submit.
//
// AuthService orchestrates login, registration, profile lookup and logout
// over the gateway and the injected session.
package services
