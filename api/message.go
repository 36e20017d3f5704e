package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/anjith1/harvest-demand-link/messaging"
	"github.com/anjith1/harvest-demand-link/schema"
	"github.com/anjith1/harvest-demand-link/store"
)

// sendMessage is the API for posting a message on a request thread
func (s *Server) sendMessage(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		RequestID  string `json:"request_id"`
		SenderType string `json:"sender_type"`
		Message    string `json:"message"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	senderType, ok := schema.ParseSenderType(params.SenderType)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	message, err := s.thread.Append(params.RequestID, requester, senderType, params.Message)
	if err != nil {
		switch err {
		case messaging.ErrEmptyMessage:
			abortWithEncoding(c, http.StatusBadRequest, errorEmptyMessage, err)
		case messaging.ErrRequestNotAccepted:
			abortWithEncoding(c, http.StatusConflict, errorRequestNotAccepted, err)
		case messaging.ErrNotParty:
			abortWithEncoding(c, http.StatusForbidden, errorNotParty, err)
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	s.enqueue("notify_new_message",
		tasks.Arg{Type: "string", Value: message.RequestID},
		tasks.Arg{Type: "string", Value: message.ReceiverID},
	)

	c.JSON(http.StatusOK, gin.H{"result": message})
}

// listMessages is the API for reading the whole thread of a request
func (s *Server) listMessages(c *gin.Context) {
	id := c.Param("requestID")

	messages, err := s.thread.List(id)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// markMessagesRead is the API for flagging the requester's unread messages
// on a thread as read
func (s *Server) markMessagesRead(c *gin.Context) {
	id := c.Param("requestID")
	requester := c.GetString("requester")

	if err := s.thread.MarkRead(id, requester); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
