package build

import "github.com/hashicorp/go-multierror"

func unwrapAll(err error) []error {
	if merr, ok := err.(*multierror.Error); ok {
		return merr.Errors
	}
	return []error{err}
}
