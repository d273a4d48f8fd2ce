// Package cli implements folio, the administrator's command-line client.
//
// Commands:
//
//	folio login [-e email]         sign in; the password is read without echo
//	folio logout                   sign out and clear the stored session
//	folio status [--local]         verify the stored session
//	folio health                   check the API
//	folio <collection> list|get|create|update|delete
//	folio image upload|delete
//
// Collections are blogs, projects, education, experience and extracurricular.
// Writes go through session.Guard and fail with a login hint when no valid
// session is stored.
package cli
