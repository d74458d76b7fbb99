// Package layout loads declarative form layouts from JSON or YAML. A layout
// declares named rows and sections and a composition expression over them:
//
//	rows:
//	  email:    {type: string, format: email, required: true}
//	  password: {type: string, required: true}
//	  newsletter: {type: boolean, label: Send me updates}
//	sections:
//	  account: {header: Account, footer: We never share your email.}
//	form: account <<< email <<< password +++ newsletter
//
// Loading only validates the document. Build (or Evaluate) creates fresh
// descriptors for every call, so one Layout can produce many independent forms.
package layout
