// Package translations provides the global holiday-name translation store.
//
// The store is the external collaborator behind Holiday.MergeGlobalTranslations:
// it answers GetTranslations(key) with a locale/name table that fills gaps in
// a holiday's own translations without overwriting custom entries.
//
// Use [Default] for the embedded data set, or [Load] with any fs.FS holding
// YAML tables of the form:
//
//	christmasDay:
//	  en: Christmas Day
//	  de: Erster Weihnachtstag
//	  nl: Eerste kerstdag
package translations
