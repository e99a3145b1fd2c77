package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/svalinn/radialbuild/errors"
)

type webHandler = func(w http.ResponseWriter, r *http.Request)

// defaulter is implemented by documents which fill their optional fields
// before the request body is decoded onto them.
type defaulter interface {
	SetDefaults()
}

func requestWrapper(handlerFunc interface{}) webHandler {
	inputType, validateErr := requestWrapperValidateSignature(handlerFunc)
	if validateErr != nil {
		log.Errorf("[ASSERT][INIT] error in web handler [%s]", validateErr.Error())
		panic(validateErr)
	}

	if inputType == nil {
		return requestWrapperCallContextOnly(reflect.ValueOf(handlerFunc))
	}
	return requestWrapperCallWithBody(reflect.ValueOf(handlerFunc), inputType)
}

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// requestWrapperValidateSignature accepts
//
//	func(context.Context[, *Document]) ([Response, ]error)
//
// and returns the document type, nil when handler takes no body.
func requestWrapperValidateSignature(handler interface{}) (reflect.Type, error) {
	handlerValue := reflect.ValueOf(handler)
	if !handlerValue.IsValid() || handlerValue.Kind() != reflect.Func {
		return nil, fmt.Errorf("handler %T is not a function", handler)
	}
	handlerType := handlerValue.Type()

	numIn, numOut := handlerType.NumIn(), handlerType.NumOut()
	if numIn < 1 || numIn > 2 {
		return nil, fmt.Errorf("handler %v takes %d arguments, want 1 or 2", handlerType, numIn)
	}
	if numOut < 1 || numOut > 2 {
		return nil, fmt.Errorf("handler %v returns %d values, want 1 or 2", handlerType, numOut)
	}
	if !handlerType.In(0).Implements(contextType) {
		return nil, fmt.Errorf("handler %v does not take context.Context first", handlerType)
	}
	if !handlerType.Out(numOut - 1).Implements(errorType) {
		return nil, fmt.Errorf("handler %v does not return error last", handlerType)
	}
	if numIn == 1 {
		return nil, nil
	}
	if handlerType.In(1).Kind() != reflect.Ptr {
		return nil, fmt.Errorf("handler %v document argument is not a pointer", handlerType)
	}
	return handlerType.In(1).Elem(), nil
}

func requestWrapperCallWithBody(handler reflect.Value, inputType reflect.Type) webHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		arg := reflect.New(inputType)
		if d, ok := arg.Interface().(defaulter); ok {
			d.SetDefaults()
		}
		body, readErr := io.ReadAll(r.Body)
		if readErr != nil {
			handleRequestErr(w, errors.ErrInternalServerError)
			return
		}
		if len(body) == 0 {
			handleRequestErr(w, errors.ErrMalformed)
			return
		}
		if unmarshalErr := yaml.Unmarshal(body, arg.Interface()); unmarshalErr != nil {
			log.Debugf("malformed request body: %s", unmarshalErr.Error())
			handleRequestErr(w, errors.ErrMalformed)
			return
		}
		response := handler.Call([]reflect.Value{
			reflect.ValueOf(withQuery(r.Context(), r)),
			arg,
		})
		requestWrapperResultHandler(w, response)
	}
}

func requestWrapperCallContextOnly(handler reflect.Value) webHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		response := handler.Call([]reflect.Value{
			reflect.ValueOf(withQuery(r.Context(), r)),
		})
		requestWrapperResultHandler(w, response)
	}
}

func requestWrapperResultHandler(w http.ResponseWriter, results []reflect.Value) {
	switch len(results) {
	case 1:
		if results[0].IsNil() {
			_ = writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		} else {
			responseErr := results[0].Interface().(error)
			handleRequestErr(w, responseErr)
		}
	case 2:
		if !results[1].IsNil() {
			responseErr := results[1].Interface().(error)
			handleRequestErr(w, responseErr)
			return
		}
		responseObj := results[0].Interface()
		if file, ok := responseObj.(*fileResponse); ok {
			_ = writeFileResponse(w, file)
			return
		}
		_ = writeJSONResponse(w, http.StatusOK, responseObj)
	}
}
