// Package errgin writes errdoc error documents from gin handlers.
//
//	if err := c.ShouldBindJSON(&req); err != nil {
//	    errgin.AbortWithValidation(c, http.StatusBadRequest, "order", &req, err)
//	    return
//	}
package errgin
